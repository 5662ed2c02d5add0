package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	pqErr := &pq.Error{Code: "40001"}

	assert.True(t, IsSerializationFailure(pqErr))

	// Обёртка в стиле run(): цепочка до pq.Error должна сохраняться
	commitErr := fmt.Errorf("%w: commit: %w", ErrTxFailed, pqErr)
	assert.True(t, IsSerializationFailure(commitErr))

	// И после исчерпания повторов конфликт остаётся различимым
	exhausted := fmt.Errorf("%w: serialization failure after 3 attempts: %w", ErrTxFailed, commitErr)
	assert.True(t, IsSerializationFailure(exhausted))

	assert.False(t, IsSerializationFailure(nil))
	assert.False(t, IsSerializationFailure(errors.New("connection reset")))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23P01"}))
	assert.False(t, IsSerializationFailure(fmt.Errorf("%w: commit: %v", ErrTxFailed, pqErr)))
}
