package domain

import (
	"fmt"
	"time"
)

const (
	RecordVersion = 1

	DefaultDailyGoal = 3
	NoBookmark       = -1

	LessonXP = 10
	QuizXP   = 5

	dateLayout = "2006-01-02"
)

type Language int

const (
	LanguageUnset Language = iota
	English
	Arabic
)

func (l Language) Valid() bool {
	return l == English || l == Arabic
}

// ProgressRecord is the persisted learner state. It is the only aggregate the
// stores read and write.
type ProgressRecord struct {
	Version int `json:"version"`

	Language Language `json:"language"`
	Level    int      `json:"level"`
	Lesson   int      `json:"lesson"`
	Bookmark int      `json:"bookmark"`

	XP                    int `json:"xp"`
	TotalXP               int `json:"total_xp"`
	TotalLessonsCompleted int `json:"total_lessons_completed"`

	DailyGoal     int    `json:"daily_goal"`
	DailyProgress int    `json:"daily_progress"`
	LastGoalDate  string `json:"last_goal_date"`

	WeeklyLessons  int `json:"weekly_lessons"`
	WeeklyXP       int `json:"weekly_xp"`
	WeeklySessions int `json:"weekly_sessions"`
	CurrentWeek    int `json:"current_week"`
	WeekYear       int `json:"week_year"`

	SessionsCount  int    `json:"sessions_count"`
	SessionCounter int    `json:"session_counter"`
	LastSeenDate   string `json:"last_seen_date"`
}

// Clamp pulls the navigation position back inside the catalog. Catalogs can
// shrink between versions, so a stored position is never trusted as is.
func (r *ProgressRecord) Clamp(c *Catalog) {
	if r.Level < 0 || r.Level >= len(c.Levels) {
		r.Level = 0
		r.Lesson = 0
		r.Bookmark = NoBookmark
	}
	n := c.LessonCount(r.Level)
	if r.Lesson < 0 {
		r.Lesson = 0
	}
	if r.Lesson >= n {
		r.Lesson = n - 1
	}
	if r.Bookmark < 0 || r.Bookmark >= n {
		r.Bookmark = NoBookmark
	}
}

// AwardLesson applies the XP and counter effects of completing one lesson.
// It reports whether the daily goal was crossed by this award.
func (r *ProgressRecord) AwardLesson() bool {
	r.XP += LessonXP
	r.TotalXP += LessonXP
	r.DailyProgress++
	r.TotalLessonsCompleted++
	r.WeeklyLessons++
	r.WeeklyXP += LessonXP
	return r.DailyProgress == r.DailyGoal
}

func (r *ProgressRecord) AwardQuiz() {
	r.XP += QuizXP
	r.TotalXP += QuizXP
}

type WeeklyStats struct {
	Lessons  int
	XP       int
	Sessions int
}

// AverageLessons is lessons per session, or zero when no sessions were counted.
func (w WeeklyStats) AverageLessons() float64 {
	if w.Sessions <= 0 {
		return 0
	}
	return float64(w.Lessons) / float64(w.Sessions)
}

func (r *ProgressRecord) Weekly() WeeklyStats {
	return WeeklyStats{Lessons: r.WeeklyLessons, XP: r.WeeklyXP, Sessions: r.WeeklySessions}
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DaysBetween returns the number of calendar days from a to b, ignoring time
// of day.
func DaysBetween(a, b string) (int, error) {
	ta, err := time.Parse(dateLayout, a)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", a, err)
	}
	tb, err := time.Parse(dateLayout, b)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", b, err)
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}
