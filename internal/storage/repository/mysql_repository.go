package repository

import (
	"context"
	"database/sql"
	"time"

	apperrors "github.com/leaflogic/securecore/internal/errors"
	storageDomain "github.com/leaflogic/securecore/internal/storage/domain"
)

// MySQLRepository implements KVRepository for MySQL databases.
type MySQLRepository struct {
	db *sql.DB
}

// NewMySQLRepository creates a new MySQL repository instance.
func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

// Put upserts a record by key.
func (m *MySQLRepository) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO secure_records (record_key, record_value, created_at, updated_at)
			  VALUES (?, ?, ?, ?)
			  ON DUPLICATE KEY UPDATE record_value = VALUES(record_value), updated_at = VALUES(updated_at)`

	now := time.Now().UTC()
	_, err := m.db.ExecContext(ctx, query, key, value, now, now)
	if err != nil {
		return apperrors.Wrap(err, "failed to put record")
	}
	return nil
}

// Get retrieves a single record by key.
func (m *MySQLRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT record_value FROM secure_records WHERE record_key = ?`

	var value []byte
	err := m.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storageDomain.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get record")
	}
	return value, nil
}

// GetAll retrieves every record whose key starts with prefix.
func (m *MySQLRepository) GetAll(ctx context.Context, prefix string) (map[string][]byte, error) {
	query := `SELECT record_key, record_value FROM secure_records WHERE record_key LIKE CONCAT(?, '%')`

	rows, err := m.db.QueryContext(ctx, query, escapeLikePrefix(prefix))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to scan records")
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan record row")
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate record rows")
	}
	return result, nil
}

// RemovePrefixes deletes every record matching any of the prefixes.
func (m *MySQLRepository) RemovePrefixes(ctx context.Context, prefixes ...string) error {
	query := `DELETE FROM secure_records WHERE record_key LIKE CONCAT(?, '%')`

	for _, prefix := range prefixes {
		if _, err := m.db.ExecContext(ctx, query, escapeLikePrefix(prefix)); err != nil {
			return apperrors.Wrap(err, "failed to remove records")
		}
	}
	return nil
}

// Close closes the underlying database connection pool.
func (m *MySQLRepository) Close() error {
	return m.db.Close()
}
