package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	apperrors "github.com/leaflogic/securecore/internal/errors"
	storageDomain "github.com/leaflogic/securecore/internal/storage/domain"
)

// FileRepository implements KVRepository as an in-memory map persisted to a
// single JSON snapshot file. Values arrive already encrypted by the store
// service, so the snapshot never contains plaintext record values.
//
// Every mutation rewrites the snapshot through a temp file and rename, so a
// crash mid-write leaves the previous snapshot intact.
type FileRepository struct {
	path    string
	mu      sync.RWMutex
	records map[string][]byte
}

// NewFileRepository loads (or creates) the snapshot at path.
func NewFileRepository(path string) (*FileRepository, error) {
	r := &FileRepository{
		path:    path,
		records: make(map[string][]byte),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, apperrors.Wrap(err, "failed to read store snapshot")
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &r.records); err != nil {
			return nil, apperrors.Wrap(storageDomain.ErrCorruptSnapshot, err.Error())
		}
	}

	return r, nil
}

// Put stores value under key and persists the snapshot.
func (r *FileRepository) Put(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, existed := r.records[key]
	stored := make([]byte, len(value))
	copy(stored, value)
	r.records[key] = stored

	if err := r.persist(); err != nil {
		// Roll back the in-memory state so memory and disk stay consistent.
		if existed {
			r.records[key] = previous
		} else {
			delete(r.records, key)
		}
		return err
	}
	return nil
}

// Get returns the value stored under key.
func (r *FileRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.records[key]
	if !ok {
		return nil, storageDomain.ErrRecordNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// GetAll returns every record whose key starts with prefix.
func (r *FileRepository) GetAll(ctx context.Context, prefix string) (map[string][]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]byte)
	for key, value := range r.records {
		if strings.HasPrefix(key, prefix) {
			out := make([]byte, len(value))
			copy(out, value)
			result[key] = out
		}
	}
	return result, nil
}

// RemovePrefixes deletes every record matching any of the prefixes and
// persists the snapshot.
func (r *FileRepository) RemovePrefixes(ctx context.Context, prefixes ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := make(map[string][]byte)
	for key, value := range r.records {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				removed[key] = value
				delete(r.records, key)
				break
			}
		}
	}
	if len(removed) == 0 {
		return nil
	}

	if err := r.persist(); err != nil {
		for key, value := range removed {
			r.records[key] = value
		}
		return err
	}
	return nil
}

// Close persists the snapshot one final time.
func (r *FileRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persist()
}

// persist writes the snapshot atomically. Callers must hold the write lock.
func (r *FileRepository) persist() error {
	data, err := json.Marshal(r.records)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode store snapshot")
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".store-*.tmp")
	if err != nil {
		return apperrors.Wrap(err, "failed to create snapshot temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.Wrap(err, "failed to write store snapshot")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(err, "failed to close snapshot temp file")
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(err, "failed to set snapshot permissions")
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(err, "failed to replace store snapshot")
	}
	return nil
}
