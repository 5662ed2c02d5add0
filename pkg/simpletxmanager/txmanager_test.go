package simpletxmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

// commitDriver минимальный sql-драйвер с управляемым результатом COMMIT
// Считает попытки коммита для проверки повторов транзакции
type commitDriver struct {
	commitErr error
	commits   int
}

func (d *commitDriver) Open(string) (driver.Conn, error) {
	return &commitConn{d: d}, nil
}

type commitConn struct {
	d *commitDriver
}

func (c *commitConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("not supported")
}

func (c *commitConn) Close() error {
	return nil
}

func (c *commitConn) Begin() (driver.Tx, error) {
	return &commitTx{d: c.d}, nil
}

func (c *commitConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return &commitTx{d: c.d}, nil
}

type commitTx struct {
	d *commitDriver
}

func (t *commitTx) Commit() error {
	t.d.commits++
	return t.d.commitErr
}

func (t *commitTx) Rollback() error {
	return nil
}

func openCommitDB(t *testing.T, name string, drv *commitDriver) *sql.DB {
	t.Helper()
	sql.Register(name, drv)
	db, err := sql.Open(name, "")
	require.NoError(t, err)
	return db
}

func TestDoSerializable_Commit(t *testing.T) {
	drv := &commitDriver{}
	db := openCommitDB(t, "commit-ok", drv)

	m := NewTransactionManager(db)
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, drv.commits)
}

func TestDoSerializable_RetriesSerializationFailureOnCommit(t *testing.T) {
	// Postgres SSI может сообщить о конфликте сериализации на COMMIT -
	// такая транзакция повторяется так же, как упавшая на запросе
	drv := &commitDriver{commitErr: &pq.Error{Code: "40001"}}
	db := openCommitDB(t, "commit-serialization-failure", drv)

	m := NewTransactionManager(db)
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, 3, drv.commits)
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.True(t, txmanager.IsSerializationFailure(err))
}

func TestDoSerializable_OtherCommitErrorNotRetried(t *testing.T) {
	drv := &commitDriver{commitErr: errors.New("connection reset")}
	db := openCommitDB(t, "commit-broken", drv)

	m := NewTransactionManager(db)
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, 1, drv.commits)
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.False(t, txmanager.IsSerializationFailure(err))
}

func TestDoSerializable_FnErrorNotRetried(t *testing.T) {
	drv := &commitDriver{}
	db := openCommitDB(t, "commit-fn-error", drv)

	wantErr := errors.New("boom")
	m := NewTransactionManager(db)
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Zero(t, drv.commits)
}
