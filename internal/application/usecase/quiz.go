package usecase

import (
	"fmt"

	"cpptutor/internal/domain"
)

const maxQuizQuestions = 5

type QuizTier int

const (
	TierLow QuizTier = iota
	TierMid
	TierTop
)

type QuizQuestion struct {
	Number    int
	Challenge string
	Solution  string
}

type QuizAnswer struct {
	Question QuizQuestion
	Given    string
	Correct  bool
}

type QuizResult struct {
	Correct  int
	Total    int
	Tier     QuizTier
	XPGained int
}

// QuizIO is the interactive side of a quiz: it supplies answers and decides
// whether to retake.
type QuizIO interface {
	Ask(q QuizQuestion) (string, error)
	Graded(a QuizAnswer)
	Finished(res QuizResult) (retry bool, err error)
}

// QuizQuestions takes the first lessons of a level in catalog order.
func QuizQuestions(level domain.Level) []QuizQuestion {
	n := min(maxQuizQuestions, len(level.Lessons))
	questions := make([]QuizQuestion, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, QuizQuestion{
			Number:    i + 1,
			Challenge: level.Lessons[i].Challenge,
			Solution:  level.Lessons[i].Solution,
		})
	}
	return questions
}

// ClassifyScore uses the integer-division half threshold, so 1 of 3 is Mid.
func ClassifyScore(correct, total int) QuizTier {
	switch {
	case correct == total:
		return TierTop
	case correct >= total/2:
		return TierMid
	default:
		return TierLow
	}
}

// RunQuiz runs the end-of-level quiz until io declines a retry and returns
// the result of every attempt. XP is applied to rec as answers are graded.
func RunQuiz(level domain.Level, rec *domain.ProgressRecord, io QuizIO) ([]QuizResult, error) {
	questions := QuizQuestions(level)
	var attempts []QuizResult
	for {
		res := QuizResult{Total: len(questions)}
		for _, q := range questions {
			given, err := io.Ask(q)
			if err != nil {
				return attempts, fmt.Errorf("quiz question %d: %w", q.Number, err)
			}
			answer := QuizAnswer{Question: q, Given: given, Correct: AnswersMatch(given, q.Solution)}
			if answer.Correct {
				res.Correct++
				res.XPGained += domain.QuizXP
				rec.AwardQuiz()
			}
			io.Graded(answer)
		}
		res.Tier = ClassifyScore(res.Correct, res.Total)
		attempts = append(attempts, res)

		retry, err := io.Finished(res)
		if err != nil {
			return attempts, err
		}
		if !retry {
			return attempts, nil
		}
	}
}
