package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cpptutor/internal/domain"
)

// ProgressFileRepository keeps the learner record as a versioned JSON
// document. Writes go to a temp file that is renamed over the target, so a
// crash between commands leaves either the old or the new record.
type ProgressFileRepository struct {
	path string
}

func NewProgressFileRepository(path string) *ProgressFileRepository {
	return &ProgressFileRepository{path: path}
}

func (r *ProgressFileRepository) Path() string { return r.path }

func (r *ProgressFileRepository) Load(ctx context.Context) (*domain.ProgressRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNoProgress
		}
		return nil, err
	}
	return decodeRecord(data)
}

func (r *ProgressFileRepository) Save(ctx context.Context, rec *domain.ProgressRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(r.path, append(data, '\n'))
}

func (r *ProgressFileRepository) Snapshot(ctx context.Context) ([]byte, error) {
	return os.ReadFile(r.path)
}

func (r *ProgressFileRepository) Reset(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func decodeRecord(data []byte) (*domain.ProgressRecord, error) {
	var rec domain.ProgressRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	if rec.Version != domain.RecordVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", domain.ErrMalformedRecord, rec.Version)
	}
	return &rec, nil
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
