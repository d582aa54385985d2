package usecase

import (
	"context"
	"errors"

	"cpptutor/internal/domain"
)

// ProgressStore persists the single learner record. Load returns
// domain.ErrNoProgress when nothing is stored and domain.ErrMalformedRecord
// when the stored bytes cannot be decoded.
type ProgressStore interface {
	Load(ctx context.Context) (*domain.ProgressRecord, error)
	Save(ctx context.Context, rec *domain.ProgressRecord) error
	Snapshot(ctx context.Context) ([]byte, error)
	Reset(ctx context.Context) error
}

type NoteStore interface {
	Append(ctx context.Context, note domain.Note) error
	List(ctx context.Context) ([]string, error)
}

type BackupSink interface {
	Backup(ctx context.Context, snapshot []byte) error
}

// CredentialChecker returns domain.ErrAuthFailed for a wrong secret.
type CredentialChecker interface {
	Check(secret string) error
}

type LessonImporter interface {
	Import(path string) (domain.Lesson, error)
}

// BackupSinks writes the same snapshot to every sink and joins the failures.
type BackupSinks []BackupSink

func (s BackupSinks) Backup(ctx context.Context, snapshot []byte) error {
	var errs []error
	for _, sink := range s {
		if err := sink.Backup(ctx, snapshot); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
