package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cpptutor/internal/domain"
)

// NotesFileRepository is the append-only notes log, one note per line.
type NotesFileRepository struct {
	path string
}

func NewNotesFileRepository(path string) *NotesFileRepository {
	return &NotesFileRepository{path: path}
}

func (r *NotesFileRepository) Append(ctx context.Context, note domain.Note) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(f, note.String()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// List returns the log lines in append order. A missing log is empty.
func (r *NotesFileRepository) List(ctx context.Context) ([]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
