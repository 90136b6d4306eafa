package repository

import (
	"context"
	"database/sql"
	"time"

	apperrors "github.com/leaflogic/securecore/internal/errors"
	storageDomain "github.com/leaflogic/securecore/internal/storage/domain"
)

// PostgreSQLRepository implements KVRepository for PostgreSQL databases.
type PostgreSQLRepository struct {
	db *sql.DB
}

// NewPostgreSQLRepository creates a new PostgreSQL repository instance.
func NewPostgreSQLRepository(db *sql.DB) *PostgreSQLRepository {
	return &PostgreSQLRepository{db: db}
}

// Put upserts a record by key.
func (p *PostgreSQLRepository) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO secure_records (key, value, created_at, updated_at)
			  VALUES ($1, $2, $3, $3)
			  ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := p.db.ExecContext(ctx, query, key, value, time.Now().UTC())
	if err != nil {
		return apperrors.Wrap(err, "failed to put record")
	}
	return nil
}

// Get retrieves a single record by key.
func (p *PostgreSQLRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM secure_records WHERE key = $1`

	var value []byte
	err := p.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storageDomain.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get record")
	}
	return value, nil
}

// GetAll retrieves every record whose key starts with prefix.
func (p *PostgreSQLRepository) GetAll(ctx context.Context, prefix string) (map[string][]byte, error) {
	query := `SELECT key, value FROM secure_records WHERE key LIKE $1 || '%' ESCAPE '\'`

	rows, err := p.db.QueryContext(ctx, query, escapeLikePrefix(prefix))
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
func (p *PostgreSQLRepository) RemovePrefixes(ctx context.Context, prefixes ...string) error {
	query := `DELETE FROM secure_records WHERE key LIKE $1 || '%' ESCAPE '\'`

	for _, prefix := range prefixes {
		if _, err := p.db.ExecContext(ctx, query, escapeLikePrefix(prefix)); err != nil {
			return apperrors.Wrap(err, "failed to remove records")
		}
	}
	return nil
}

// Close closes the underlying database connection pool.
func (p *PostgreSQLRepository) Close() error {
	return p.db.Close()
}
