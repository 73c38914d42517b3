package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/gigs/internal/shared"
)

// Blob is a stored value with its bookkeeping timestamps.
type Blob struct {
	Key       string
	Value     []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlobRepository reads and writes keyed blobs.
type BlobRepository struct {
	db *sql.DB
}

// NewBlobRepository creates a new BlobRepository with the given database connection
func NewBlobRepository(db *sql.DB) *BlobRepository {
	return &BlobRepository{db: db}
}

// Get returns the value stored under key, or an error matching [shared.ErrBlobNotFound].
func (r *BlobRepository) Get(key string) ([]byte, error) {
	blob, err := r.Fetch(key)
	if err != nil {
		return nil, err
	}
	return blob.Value, nil
}

// Fetch returns the blob stored under key including its timestamps.
func (r *BlobRepository) Fetch(key string) (*Blob, error) {
	query := `
		SELECT key, value, created_at, updated_at
		FROM blobs
		WHERE key = ?
	`

	var (
		blob  Blob
		value string
	)
	err := r.db.QueryRow(query, key).Scan(&blob.Key, &value, &blob.CreatedAt, &blob.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", shared.ErrBlobNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan blob: %w", err)
	}

	blob.Value = []byte(value)
	return &blob, nil
}

// Put stores value under key, replacing any previous value.
func (r *BlobRepository) Put(key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("%w: empty blob key", shared.ErrInvalidArgument)
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO blobs (key, value, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, key, string(value), now, now); err != nil {
		return fmt.Errorf("failed to put blob: %w", err)
	}
	return nil
}

// Delete removes the blob stored under key.
func (r *BlobRepository) Delete(key string) error {
	result, err := r.db.Exec("DELETE FROM blobs WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrBlobNotFound, key)
	}

	return nil
}

// Keys lists every stored key in ascending order.
func (r *BlobRepository) Keys() ([]string, error) {
	rows, err := r.db.Query("SELECT key FROM blobs ORDER BY key ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query blobs: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan blob key: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return keys, nil
}
