package usecase

import (
	"testing"
	"time"

	"cpptutor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
}

func storedRecord(now time.Time) *domain.ProgressRecord {
	year, week := now.ISOWeek()
	today := domain.FormatDate(now)
	return &domain.ProgressRecord{
		Version:        domain.RecordVersion,
		Language:       domain.English,
		Bookmark:       domain.NoBookmark,
		DailyGoal:      3,
		DailyProgress:  2,
		LastGoalDate:   today,
		WeeklyLessons:  4,
		WeeklyXP:       40,
		WeeklySessions: 2,
		CurrentWeek:    week,
		WeekYear:       year,
		SessionsCount:  2,
		SessionCounter: 2,
		LastSeenDate:   today,
	}
}

func TestReconcileSameDay(t *testing.T) {
	now := day(2025, time.March, 5)
	rec := storedRecord(now)

	report := ReconcileSession(rec, now)

	assert.False(t, report.DayRolledOver)
	assert.False(t, report.WeekRolledOver)
	assert.False(t, report.Reminder())
	assert.True(t, report.Backup, "third session triggers a backup")
	assert.Nil(t, report.WeeklySummary)
	assert.Equal(t, 2, rec.DailyProgress)
	assert.Equal(t, 3, rec.SessionsCount)
	assert.Equal(t, 3, rec.SessionCounter)
	assert.Equal(t, 3, rec.WeeklySessions)
}

func TestReconcileDayRollover(t *testing.T) {
	prev := day(2025, time.March, 4) // Tuesday
	now := day(2025, time.March, 5)
	rec := storedRecord(prev)

	report := ReconcileSession(rec, now)

	assert.True(t, report.DayRolledOver)
	assert.False(t, report.WeekRolledOver)
	assert.Zero(t, rec.DailyProgress)
	assert.Equal(t, "2025-03-05", rec.LastGoalDate)
	assert.Equal(t, "2025-03-05", rec.LastSeenDate)
	assert.Equal(t, 4, rec.WeeklyLessons, "weekly counters survive a day rollover")
	assert.Equal(t, 40, rec.WeeklyXP)
}

func TestReconcileWeekRollover(t *testing.T) {
	prev := day(2025, time.March, 7) // Friday
	now := day(2025, time.March, 10) // Monday
	rec := storedRecord(prev)
	rec.XP = 70

	report := ReconcileSession(rec, now)

	assert.True(t, report.WeekRolledOver)
	assert.True(t, report.Reminder())
	assert.Equal(t, 3, report.ReminderDays)
	assert.Zero(t, rec.WeeklyLessons)
	assert.Zero(t, rec.WeeklyXP)
	assert.Equal(t, 1, rec.WeeklySessions)
	assert.Equal(t, 70, rec.XP)
	_, week := now.ISOWeek()
	assert.Equal(t, week, rec.CurrentWeek)
}

func TestReconcileSameWeekNumberNextYear(t *testing.T) {
	prev := day(2024, time.March, 5)
	now := day(2025, time.March, 4)
	_, w1 := prev.ISOWeek()
	_, w2 := now.ISOWeek()
	require.Equal(t, w1, w2)

	rec := storedRecord(prev)
	report := ReconcileSession(rec, now)
	assert.True(t, report.WeekRolledOver)
	assert.Equal(t, 2025, rec.WeekYear)
}

func TestReminderNeedsMoreThanTwoDays(t *testing.T) {
	now := day(2025, time.March, 5)

	rec := storedRecord(day(2025, time.March, 3))
	assert.False(t, ReconcileSession(rec, now).Reminder())

	rec = storedRecord(day(2025, time.March, 2))
	report := ReconcileSession(rec, now)
	assert.True(t, report.Reminder())
	assert.Equal(t, 3, report.ReminderDays)
}

func TestBackupAndWeeklyTriggers(t *testing.T) {
	now := day(2025, time.March, 5)
	rec := storedRecord(now)
	rec.SessionCounter = 0

	var backups, summaries []int
	for i := 0; i < 14; i++ {
		report := ReconcileSession(rec, now)
		if report.Backup {
			backups = append(backups, rec.SessionCounter)
		}
		if report.WeeklySummary != nil {
			summaries = append(summaries, rec.SessionCounter)
		}
	}
	assert.Equal(t, []int{3, 6, 9, 12}, backups)
	assert.Equal(t, []int{7, 14}, summaries)
}

func TestWeeklySummaryCarriesStats(t *testing.T) {
	now := day(2025, time.March, 5)
	rec := storedRecord(now)
	rec.SessionCounter = 6

	report := ReconcileSession(rec, now)
	require.NotNil(t, report.WeeklySummary)
	assert.Equal(t, domain.WeeklyStats{Lessons: 4, XP: 40, Sessions: 3}, *report.WeeklySummary)
}

func TestNewFirstRunRecord(t *testing.T) {
	now := day(2025, time.March, 5)

	rec, defaulted := NewFirstRunRecord("", now)
	assert.True(t, defaulted)
	assert.Equal(t, 3, rec.DailyGoal)
	assert.Equal(t, domain.NoBookmark, rec.Bookmark)
	assert.Equal(t, 1, rec.SessionsCount)
	assert.Equal(t, 1, rec.SessionCounter)
	assert.Equal(t, 1, rec.WeeklySessions)
	assert.Equal(t, "2025-03-05", rec.LastGoalDate)
	assert.Equal(t, domain.LanguageUnset, rec.Language)

	rec, defaulted = NewFirstRunRecord(" 5 ", now)
	assert.False(t, defaulted)
	assert.Equal(t, 5, rec.DailyGoal)
}

func TestParseDailyGoal(t *testing.T) {
	for _, in := range []string{"", "abc", "0", "-2", "3.5"} {
		goal, ok := ParseDailyGoal(in)
		assert.False(t, ok, in)
		assert.Equal(t, domain.DefaultDailyGoal, goal, in)
	}
	goal, ok := ParseDailyGoal("7")
	assert.True(t, ok)
	assert.Equal(t, 7, goal)
}
