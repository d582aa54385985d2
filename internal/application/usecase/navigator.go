package usecase

import (
	"strings"

	"cpptutor/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Outcome describes the effect of one navigation step. Changed is set when
// the record must be persisted.
type Outcome struct {
	Changed       bool
	XPGained      int
	GoalReached   bool
	LevelComplete bool
	Quit          bool
}

// Navigator is the position state machine over one catalog. It never touches
// storage; Tutor persists after each changed Outcome.
type Navigator struct {
	catalog *domain.Catalog
	rec     *domain.ProgressRecord
	mode    domain.Mode
	review  bool
}

func NewNavigator(catalog *domain.Catalog, rec *domain.ProgressRecord, mode domain.Mode) *Navigator {
	rec.Clamp(catalog)
	return &Navigator{catalog: catalog, rec: rec, mode: mode}
}

func (n *Navigator) Mode() domain.Mode { return n.mode }

func (n *Navigator) Review() bool { return n.review }

func (n *Navigator) Level() domain.Level { return n.catalog.Levels[n.rec.Level] }

func (n *Navigator) LessonCount() int { return n.catalog.LessonCount(n.rec.Level) }

func (n *Navigator) Current() domain.Lesson {
	l, _ := n.catalog.Lesson(n.rec.Level, n.rec.Lesson)
	return l
}

func (n *Navigator) atLast() bool { return n.rec.Lesson >= n.LessonCount()-1 }

func (n *Navigator) Advance() (Outcome, error) {
	if n.atLast() {
		return Outcome{LevelComplete: n.mode == domain.ModeTraining && !n.review}, domain.ErrAtLastLesson
	}
	n.rec.Lesson++
	goal := n.rec.AwardLesson()
	return Outcome{Changed: true, XPGained: domain.LessonXP, GoalReached: goal}, nil
}

func (n *Navigator) Retreat() (Outcome, error) {
	if n.rec.Lesson == 0 {
		return Outcome{}, domain.ErrAtFirstLesson
	}
	n.rec.Lesson--
	return Outcome{Changed: true}, nil
}

func (n *Navigator) SetBookmark() Outcome {
	n.rec.Bookmark = n.rec.Lesson
	return Outcome{Changed: true}
}

func (n *Navigator) JumpToBookmark() (Outcome, error) {
	b := n.rec.Bookmark
	if b < 0 || b >= n.LessonCount() {
		return Outcome{}, domain.ErrNoBookmark
	}
	n.rec.Lesson = b
	return Outcome{Changed: true}, nil
}

// ToggleReview flips review presentation. Review only exists in training.
func (n *Navigator) ToggleReview() error {
	if n.mode != domain.ModeTraining {
		return domain.ErrInvalidCommand
	}
	n.review = !n.review
	return nil
}

// Answer scores a challenge-mode answer for the current lesson. A match
// awards lesson XP and moves forward unless the lesson is the last one.
func (n *Navigator) Answer(answer string) (Outcome, bool) {
	if !AnswersMatch(answer, n.Current().Solution) {
		return Outcome{}, false
	}
	goal := n.rec.AwardLesson()
	if !n.atLast() {
		n.rec.Lesson++
	}
	return Outcome{Changed: true, XPGained: domain.LessonXP, GoalReached: goal}, true
}

// Skip moves forward without XP.
func (n *Navigator) Skip() Outcome {
	if n.atLast() {
		return Outcome{}
	}
	n.rec.Lesson++
	return Outcome{Changed: true}
}

func (n *Navigator) RestartLevel() Outcome {
	n.rec.Lesson = 0
	return Outcome{Changed: true}
}

// NextLevel moves to the first lesson of the following level. It reports
// false on the final level.
func (n *Navigator) NextLevel() (Outcome, bool) {
	if n.rec.Level+1 >= len(n.catalog.Levels) {
		return Outcome{}, false
	}
	n.rec.Level++
	n.rec.Lesson = 0
	n.rec.Bookmark = domain.NoBookmark
	return Outcome{Changed: true}, true
}

// NormalizeAnswer trims surrounding whitespace and lowercases.
func NormalizeAnswer(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

func AnswersMatch(answer, solution string) bool {
	return NormalizeAnswer(answer) == NormalizeAnswer(solution)
}
