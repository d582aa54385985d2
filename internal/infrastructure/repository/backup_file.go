package repository

import "context"

// BackupFileRepository writes progress snapshots to a secondary file.
type BackupFileRepository struct {
	path string
}

func NewBackupFileRepository(path string) *BackupFileRepository {
	return &BackupFileRepository{path: path}
}

func (r *BackupFileRepository) Backup(ctx context.Context, snapshot []byte) error {
	return writeFileAtomic(r.path, snapshot)
}
