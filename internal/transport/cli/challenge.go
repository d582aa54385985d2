package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cpptutor/internal/application/usecase"
	"cpptutor/internal/domain"
)

func (h *Handler) challengeLoop(ctx context.Context) error {
	for {
		nav := h.tutor.Navigator()
		rec := h.tutor.Record()
		lesson := nav.Current()

		h.term.Clear()
		h.term.Color(colorBold, fmt.Sprintf(h.loc.LessonHeader, rec.Lesson+1, nav.LessonCount()))
		h.term.Println(lesson.Challenge)
		answer, err := h.term.Prompt(h.loc.ChallengePrompt)
		if err != nil {
			return err
		}

		switch h.challengeToken(answer) {
		case domain.CmdQuit:
			h.term.Println(h.loc.Goodbye)
			return nil
		case domain.CmdRetreat:
			if _, err := h.tutor.Dispatch(ctx, domain.CmdRetreat); err != nil && !errors.Is(err, domain.ErrBoundaryReached) {
				h.warnSave(err)
			}
			continue
		case domain.CmdAdvance:
			if _, err := h.tutor.SkipChallenge(ctx); err != nil {
				h.warnSave(err)
			}
			continue
		}

		wasLast := rec.Lesson == nav.LessonCount()-1
		out, correct, err := h.tutor.SubmitChallenge(ctx, answer)
		if err != nil {
			h.warnSave(err)
		}
		if correct {
			h.term.Color(colorGreen, fmt.Sprintf(h.loc.Correct, rec.XP))
			h.showXP(out)
			if wasLast {
				h.term.Println(h.loc.ChallengeSolved)
			}
		} else {
			h.term.Color(colorRed, h.loc.Incorrect)
			h.term.Println(h.loc.Solution + " " + lesson.Solution)
		}
		h.term.Pause(h.loc.PressEnter)
	}
}

// challengeToken recognizes skip, back and exit in the session language and
// in English. Anything else is an answer.
func (h *Handler) challengeToken(input string) domain.Command {
	input = strings.TrimSpace(input)
	for _, loc := range []*Locale{h.loc, English} {
		switch input {
		case loc.ChallengeExit:
			return domain.CmdQuit
		case loc.ChallengeBack:
			return domain.CmdRetreat
		case loc.ChallengeSkip:
			return domain.CmdAdvance
		}
	}
	return domain.CmdInvalid
}

type quizPrompter struct {
	h *Handler
}

func (q *quizPrompter) Ask(question usecase.QuizQuestion) (string, error) {
	if question.Number == 1 {
		q.h.term.Clear()
		q.h.term.Color(colorCyan, q.h.loc.QuizTitle)
	}
	q.h.term.Type(fmt.Sprintf(q.h.loc.QuizQuestion, question.Number, question.Challenge))
	return q.h.term.Prompt(q.h.loc.QuizAnswer)
}

func (q *quizPrompter) Graded(a usecase.QuizAnswer) {
	if a.Correct {
		q.h.term.Color(colorGreen, q.h.loc.QuizCorrect)
		return
	}
	q.h.term.Color(colorRed, fmt.Sprintf(q.h.loc.QuizIncorrect, a.Question.Solution))
}

func (q *quizPrompter) Finished(res usecase.QuizResult) (bool, error) {
	q.h.term.Color(colorCyan, "\n"+fmt.Sprintf(q.h.loc.QuizScore, res.Correct, res.Total))
	switch res.Tier {
	case usecase.TierTop:
		q.h.term.Color(colorGreen, q.h.loc.QuizTop)
	case usecase.TierMid:
		q.h.term.Color(colorYellow, q.h.loc.QuizMid)
	default:
		q.h.term.Color(colorRed, q.h.loc.QuizLow)
	}
	input, err := q.h.term.Prompt("\n" + q.h.loc.QuizRetryPrompt)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(input) == q.h.loc.QuizRetryToken, nil
}
