package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
)

// serializationFailure код ошибки postgres при конфликте сериализуемых транзакций
const serializationFailure = "40001"

// maxRetries количество повторов транзакции при serialization failure
const maxRetries = 3

// ErrTxFailed возвращается, когда транзакция не прошла после всех повторов
var ErrTxFailed = errors.New("txmanager: transaction failed")

// TransactionManager менеджер транзакций поверх *dbmetrics.DB
// Транзакция передаётся в репозитории через контекст (dbmetrics.WithTx)
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции
// При serialization failure транзакция повторяется до maxRetries раз
// Используется для закрытия гонки "проверили конфликт - вставили запись"
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if !IsSerializationFailure(err) {
			return err
		}
	}

	return fmt.Errorf("%w: serialization failure after %d attempts: %w", ErrTxFailed, maxRetries, err)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTxFailed, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w: rollback after %w: %v", ErrTxFailed, err, rbErr)
		}
		return err
	}

	// Postgres SSI сообщает о конфликте сериализации и на COMMIT,
	// поэтому цепочка ошибки сохраняется для проверки на повтор
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrTxFailed, err)
	}

	return nil
}

// IsSerializationFailure возвращает true, если ошибка вызвана конфликтом
// сериализуемых транзакций (postgres SQLSTATE 40001)
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailure
	}
	return false
}
