package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/leaflogic/securecore/internal/errors"
)

func setupMySQLMock(t *testing.T) (*MySQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewMySQLRepository(db), mock
}

func TestMySQLRepository_Put(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO secure_records`)).
			WithArgs("food_alice_42", []byte("ciphertext"), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Put(ctx, "food_alice_42", []byte("ciphertext"))
		assert.NoError(t, err)
	})

	t.Run("Error_DatabaseFailure", func(t *testing.T) {
		repo, mock := setupMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO secure_records`)).
			WillReturnError(assert.AnError)

		err := repo.Put(ctx, "food_alice_42", []byte("ciphertext"))
		assert.Error(t, err)
	})
}

func TestMySQLRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupMySQLMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT record_value FROM secure_records WHERE record_key = ?`)).
			WithArgs("security_photo_enhanced").
			WillReturnRows(sqlmock.NewRows([]string{"record_value"}).AddRow([]byte("true")))

		value, err := repo.Get(ctx, "security_photo_enhanced")
		require.NoError(t, err)
		assert.Equal(t, []byte("true"), value)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, mock := setupMySQLMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT record_value FROM secure_records WHERE record_key = ?`)).
			WithArgs("security_missing").
			WillReturnRows(sqlmock.NewRows([]string{"record_value"}))

		_, err := repo.Get(ctx, "security_missing")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestMySQLRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	repo, mock := setupMySQLMock(t)

	rows := sqlmock.NewRows([]string{"record_key", "record_value"}).
		AddRow("food_alice_1", []byte("a")).
		AddRow("food_alice_2", []byte("b"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT record_key, record_value FROM secure_records WHERE record_key LIKE`)).
		WithArgs(`food\_alice\_`).
		WillReturnRows(rows)

	records, err := repo.GetAll(ctx, "food_alice_")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestMySQLRepository_RemovePrefixes(t *testing.T) {
	ctx := context.Background()
	repo, mock := setupMySQLMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM secure_records WHERE record_key LIKE`)).
		WithArgs(`profile\_alice\_`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.RemovePrefixes(ctx, "profile_alice_")
	assert.NoError(t, err)
}
