package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return &Catalog{Levels: []Level{
		{Name: "Beginner", Lessons: []Lesson{{Explanation: "A\nfirst"}, {Explanation: "B"}, {Explanation: "C"}}},
		{Name: "Intermediate", Lessons: []Lesson{{Explanation: "D"}, {Explanation: "E"}}},
	}}
}

func TestClamp(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name string
		in   ProgressRecord
		want ProgressRecord
	}{
		{"in range", ProgressRecord{Level: 1, Lesson: 1, Bookmark: 0}, ProgressRecord{Level: 1, Lesson: 1, Bookmark: 0}},
		{"lesson past end", ProgressRecord{Level: 1, Lesson: 7, Bookmark: 1}, ProgressRecord{Level: 1, Lesson: 1, Bookmark: 1}},
		{"negative lesson", ProgressRecord{Level: 0, Lesson: -3, Bookmark: NoBookmark}, ProgressRecord{Level: 0, Lesson: 0, Bookmark: NoBookmark}},
		{"bad level", ProgressRecord{Level: 9, Lesson: 2, Bookmark: 2}, ProgressRecord{Level: 0, Lesson: 0, Bookmark: NoBookmark}},
		{"stale bookmark", ProgressRecord{Level: 1, Lesson: 0, Bookmark: 4}, ProgressRecord{Level: 1, Lesson: 0, Bookmark: NoBookmark}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.in
			rec.Clamp(c)
			assert.Equal(t, tt.want, rec)
		})
	}
}

func TestAwardLessonReportsGoalOnce(t *testing.T) {
	rec := ProgressRecord{DailyGoal: 2}

	assert.False(t, rec.AwardLesson())
	assert.True(t, rec.AwardLesson())
	assert.False(t, rec.AwardLesson())

	assert.Equal(t, 30, rec.XP)
	assert.Equal(t, 30, rec.TotalXP)
	assert.Equal(t, 3, rec.DailyProgress)
	assert.Equal(t, 3, rec.TotalLessonsCompleted)
	assert.Equal(t, 3, rec.WeeklyLessons)
	assert.Equal(t, 30, rec.WeeklyXP)
}

func TestAwardQuiz(t *testing.T) {
	rec := ProgressRecord{XP: 10, TotalXP: 40}
	rec.AwardQuiz()
	assert.Equal(t, 15, rec.XP)
	assert.Equal(t, 45, rec.TotalXP)
	assert.Zero(t, rec.DailyProgress)
}

func TestWeeklyAverage(t *testing.T) {
	assert.InDelta(t, 2.5, WeeklyStats{Lessons: 5, Sessions: 2}.AverageLessons(), 0.0001)
	assert.Zero(t, WeeklyStats{Lessons: 5}.AverageLessons())
}

func TestDaysBetween(t *testing.T) {
	days, err := DaysBetween("2024-02-27", "2024-03-02")
	require.NoError(t, err)
	assert.Equal(t, 4, days)

	days, err = DaysBetween("2024-12-31", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	_, err = DaysBetween("", "2025-01-01")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2025-03-07", FormatDate(time.Date(2025, 3, 7, 23, 59, 0, 0, time.UTC)))
}

func TestBoundaryErrors(t *testing.T) {
	assert.True(t, errors.Is(ErrAtFirstLesson, ErrBoundaryReached))
	assert.True(t, errors.Is(ErrAtLastLesson, ErrBoundaryReached))
	assert.False(t, errors.Is(ErrNoBookmark, ErrBoundaryReached))
}
