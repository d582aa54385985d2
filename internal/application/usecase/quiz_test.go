package usecase

import (
	"errors"
	"testing"

	"cpptutor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedQuiz struct {
	answers []string
	retries []bool
	asked   []int
	graded  []QuizAnswer
	results []QuizResult
}

func (s *scriptedQuiz) Ask(q QuizQuestion) (string, error) {
	s.asked = append(s.asked, q.Number)
	if len(s.answers) == 0 {
		return "", errors.New("out of answers")
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *scriptedQuiz) Graded(a QuizAnswer) { s.graded = append(s.graded, a) }

func (s *scriptedQuiz) Finished(res QuizResult) (bool, error) {
	s.results = append(s.results, res)
	if len(s.retries) == 0 {
		return false, nil
	}
	r := s.retries[0]
	s.retries = s.retries[1:]
	return r, nil
}

func TestQuizQuestionsCapAtFive(t *testing.T) {
	assert.Len(t, QuizQuestions(buildCatalog(6).Levels[0]), 5)
	qs := QuizQuestions(buildCatalog(3).Levels[0])
	require.Len(t, qs, 3)
	assert.Equal(t, 1, qs[0].Number)
	assert.Equal(t, "challenge 0-2", qs[2].Challenge)
}

func TestClassifyScore(t *testing.T) {
	tests := []struct {
		correct, total int
		want           QuizTier
	}{
		{5, 5, TierTop},
		{3, 3, TierTop},
		{1, 3, TierMid},
		{2, 5, TierMid},
		{1, 5, TierLow},
		{0, 3, TierLow},
		{0, 1, TierMid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyScore(tt.correct, tt.total), "%d/%d", tt.correct, tt.total)
	}
}

func TestRunQuizOneOfThreeIsMid(t *testing.T) {
	rec := newRecord()
	io := &scriptedQuiz{answers: []string{"  ANSWER 0-0 ", "wrong", ""}}

	results, err := RunQuiz(buildCatalog(3).Levels[0], rec, io)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, QuizResult{Correct: 1, Total: 3, Tier: TierMid, XPGained: 5}, results[0])
	assert.Equal(t, 5, rec.XP)
	assert.Equal(t, 5, rec.TotalXP)
	assert.Zero(t, rec.DailyProgress)
	require.Len(t, io.graded, 3)
	assert.True(t, io.graded[0].Correct)
	assert.False(t, io.graded[1].Correct)
}

func TestRunQuizRetryRepeatsSameQuestions(t *testing.T) {
	rec := newRecord()
	io := &scriptedQuiz{
		answers: []string{"x", "y", "answer 0-0", "answer 0-1"},
		retries: []bool{true, false},
	}

	results, err := RunQuiz(buildCatalog(2).Levels[0], rec, io)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, TierLow, results[0].Tier)
	assert.Equal(t, TierTop, results[1].Tier)
	assert.Equal(t, []int{1, 2, 1, 2}, io.asked)
	assert.Equal(t, 10, rec.XP)
}

func TestRunQuizStopsOnInputError(t *testing.T) {
	rec := newRecord()
	io := &scriptedQuiz{answers: []string{"answer 0-0"}}

	_, err := RunQuiz(buildCatalog(3).Levels[0], rec, io)
	assert.Error(t, err)
	assert.Equal(t, domain.QuizXP, rec.XP)
}
