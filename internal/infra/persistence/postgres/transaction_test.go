package postgres

import (
	"context"
	"testing"

	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func requireDatabaseError(t *testing.T, err error, details string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, details, appErr.Details())
}

func TestTransactionManager_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		t.Fatal("fn must not run without a transaction")

		return nil
	})

	requireDatabaseError(t, err, "failed to begin transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return nil
	})

	requireDatabaseError(t, err, "failed to commit transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_FnErrorRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return domainerrors.ErrProviderNotFound
	})

	assert.Equal(t, domainerrors.ErrProviderNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var factory repository.RepositoryFactory
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		factory = f

		return nil
	})

	require.NoError(t, err)
	assert.NotNil(t, factory.NewProviderRepository())
	assert.NotNil(t, factory.NewAppointmentRepository())
	assert.NoError(t, mock.ExpectationsWereMet())
}
