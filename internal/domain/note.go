package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID       uuid.UUID
	Date     string
	Language Language
	Level    int
	Lesson   int
	Body     string
}

func NewNote(now time.Time, rec *ProgressRecord, body string) Note {
	return Note{
		ID:       uuid.New(),
		Date:     FormatDate(now),
		Language: rec.Language,
		Level:    rec.Level,
		Lesson:   rec.Lesson,
		Body:     body,
	}
}

// String renders the note as one log line. Lessons are shown 1-based.
func (n Note) String() string {
	return fmt.Sprintf("%s | Lang:%d | Level:%d | Lesson:%d | %s", n.Date, n.Language, n.Level, n.Lesson+1, n.Body)
}
