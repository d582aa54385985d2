package usecase

import (
	"strconv"
	"strings"
	"time"

	"cpptutor/internal/domain"
)

const (
	backupEvery        = 3
	weeklySummaryEvery = 7
	reminderAfterDays  = 2
)

// SessionReport lists the session-boundary effects computed at startup.
type SessionReport struct {
	FirstRun       bool
	Malformed      bool
	DayRolledOver  bool
	WeekRolledOver bool
	ReminderDays   int
	Backup         bool
	BackupErr      error
	WeeklySummary  *domain.WeeklyStats
	GoalDefaulted  bool
}

func (r SessionReport) Reminder() bool {
	return r.ReminderDays > 0
}

// ReconcileSession adjusts a freshly loaded record for a new session that
// starts at now.
func ReconcileSession(rec *domain.ProgressRecord, now time.Time) SessionReport {
	var report SessionReport
	today := domain.FormatDate(now)
	year, week := now.ISOWeek()

	if rec.LastGoalDate != today {
		rec.DailyProgress = 0
		rec.LastGoalDate = today
		report.DayRolledOver = true
	}

	if rec.CurrentWeek != week || rec.WeekYear != year {
		rec.WeeklyLessons = 0
		rec.WeeklyXP = 0
		rec.WeeklySessions = 0
		rec.CurrentWeek = week
		rec.WeekYear = year
		report.WeekRolledOver = true
	}

	rec.SessionsCount++
	rec.SessionCounter++
	rec.WeeklySessions++

	if days, err := domain.DaysBetween(rec.LastSeenDate, today); err == nil && days > reminderAfterDays {
		report.ReminderDays = days
	}

	if rec.SessionCounter%backupEvery == 0 {
		report.Backup = true
	}
	if rec.SessionCounter%weeklySummaryEvery == 0 {
		stats := rec.Weekly()
		report.WeeklySummary = &stats
	}

	rec.LastSeenDate = today
	return report
}

// NewFirstRunRecord builds the record for a learner with no stored progress.
// goalInput is the raw answer to the daily-goal prompt.
func NewFirstRunRecord(goalInput string, now time.Time) (*domain.ProgressRecord, bool) {
	goal, ok := ParseDailyGoal(goalInput)
	today := domain.FormatDate(now)
	year, week := now.ISOWeek()
	return &domain.ProgressRecord{
		Version:        domain.RecordVersion,
		Bookmark:       domain.NoBookmark,
		DailyGoal:      goal,
		LastGoalDate:   today,
		LastSeenDate:   today,
		CurrentWeek:    week,
		WeekYear:       year,
		SessionsCount:  1,
		SessionCounter: 1,
		WeeklySessions: 1,
	}, !ok
}

// ParseDailyGoal falls back to the default goal for empty, non-numeric or
// non-positive input.
func ParseDailyGoal(input string) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.DefaultDailyGoal, false
	}
	goal, err := strconv.Atoi(input)
	if err != nil || goal <= 0 {
		return domain.DefaultDailyGoal, false
	}
	return goal, true
}
