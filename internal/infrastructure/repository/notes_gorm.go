package repository

import (
	"context"
	"time"

	"cpptutor/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteGorm struct {
	ID        uint      `gorm:"primaryKey"`
	NoteID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ProfileID uuid.UUID `gorm:"type:uuid;index"`
	Date      string    `gorm:"size:10"`
	Language  int
	Level     int
	Lesson    int
	Body      string
	CreatedAt time.Time
}

func (n *NoteGorm) TableName() string {
	return "notes"
}

// NotesRepository keeps notes as rows, rendered in the log line format.
type NotesRepository struct {
	db        *gorm.DB
	profileID uuid.UUID
}

func NewNotesRepository(db *gorm.DB, profileID uuid.UUID) *NotesRepository {
	return &NotesRepository{db: db, profileID: profileID}
}

func (r *NotesRepository) Append(ctx context.Context, note domain.Note) error {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(&NoteGorm{
		NoteID:    note.ID,
		ProfileID: r.profileID,
		Date:      note.Date,
		Language:  int(note.Language),
		Level:     note.Level,
		Lesson:    note.Lesson,
		Body:      note.Body,
	}).Error
}

func (r *NotesRepository) List(ctx context.Context) ([]string, error) {
	var rows []NoteGorm
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", r.profileID).
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, domain.Note{
			ID:       row.NoteID,
			Date:     row.Date,
			Language: domain.Language(row.Language),
			Level:    row.Level,
			Lesson:   row.Lesson,
			Body:     row.Body,
		}.String())
	}
	return lines, nil
}
