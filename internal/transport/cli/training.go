package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cpptutor/internal/domain"
)

func (h *Handler) trainingLoop(ctx context.Context) error {
	for {
		h.renderLesson()
		input, err := h.term.Prompt("\n" + h.loc.CommandPrompt)
		if err != nil {
			return err
		}
		done, err := h.handleCommand(ctx, h.loc.Parse(input))
		if err != nil || done {
			return err
		}
	}
}

func (h *Handler) renderLesson() {
	nav := h.tutor.Navigator()
	lesson := nav.Current()
	header := fmt.Sprintf(h.loc.LessonHeader, h.tutor.Record().Lesson+1, nav.LessonCount())

	h.term.Clear()
	if nav.Review() {
		h.term.Color(colorBold, header)
		h.term.Color(colorBlue, lesson.Title())
		if summary := lesson.Summary(); summary != "" {
			h.term.Println(summary)
		}
		h.term.Println("\n" + h.loc.MiniChallenge)
		h.term.Println(lesson.Challenge)
		h.term.Println(h.loc.ReviewHint)
		return
	}

	h.term.Type(header)
	h.term.Println(lesson.Explanation)
	h.term.Println("\n" + h.loc.SampleCode)
	h.term.Println(lesson.Code)
	h.term.Println("\n" + h.loc.MiniChallenge)
	h.term.Println(lesson.Challenge)
	if lesson.HasRelated() {
		h.term.Color(colorMagenta, h.loc.RelatedTopic+"\""+lesson.RelatedTitle+"\""+h.loc.RelatedFrom+lesson.RelatedLevel)
	}
	h.term.Println(h.loc.CommandsHint)
}

// handleCommand reports true when the session should end.
func (h *Handler) handleCommand(ctx context.Context, cmd domain.Command) (bool, error) {
	lesson := h.tutor.Navigator().Current()
	switch cmd {
	case domain.CmdShowCode:
		h.term.Println("\n" + h.loc.SampleCode)
		h.term.Println(lesson.Code)
		h.term.Pause(h.loc.PressEnter)
		return false, nil
	case domain.CmdShowSolution:
		h.term.Println("\n" + h.loc.Solution)
		h.term.Println(lesson.Solution)
		h.term.Pause(h.loc.PressEnter)
		return false, nil
	case domain.CmdAddNote:
		return false, h.addNote(ctx)
	case domain.CmdListNotes:
		if err := h.ShowNotes(ctx); err != nil {
			h.warnSave(err)
		}
		h.term.Pause(h.loc.PressEnter)
		return false, nil
	case domain.CmdEditContent:
		return false, h.editContent(ctx)
	case domain.CmdImportLesson:
		return false, h.importLesson(ctx)
	}

	out, err := h.tutor.Dispatch(ctx, cmd)
	switch {
	case errors.Is(err, domain.ErrAtLastLesson) && out.LevelComplete:
		return h.completeLevel(ctx)
	case errors.Is(err, domain.ErrAtLastLesson):
		h.term.Println(h.loc.AtLastLesson)
	case errors.Is(err, domain.ErrAtFirstLesson):
		h.term.Println(h.loc.AtFirstLesson)
	case errors.Is(err, domain.ErrNoBookmark):
		h.term.Color(colorRed, h.loc.NoBookmark)
	case errors.Is(err, domain.ErrInvalidCommand):
		h.term.Println(h.loc.InvalidCommand)
	case err != nil:
		h.warnSave(err)
	case out.Quit:
		h.term.Println(h.loc.Goodbye)
		return true, nil
	case cmd == domain.CmdAdvance:
		h.term.Color(colorGreen, fmt.Sprintf(h.loc.XPEarned, h.tutor.Record().XP))
		h.showXP(out)
	case cmd == domain.CmdSetBookmark:
		h.term.Color(colorGreen, fmt.Sprintf(h.loc.BookmarkSaved, h.tutor.Record().Lesson+1))
	case cmd == domain.CmdJumpToBookmark:
		h.term.Color(colorGreen, fmt.Sprintf(h.loc.BookmarkJumped, h.tutor.Record().Lesson+1))
	default:
		return false, nil
	}
	h.term.Pause(h.loc.PressEnter)
	return false, nil
}

func (h *Handler) addNote(ctx context.Context) error {
	body, err := h.term.Prompt(h.loc.NotePrompt)
	if err != nil {
		return err
	}
	if err := h.tutor.AddNote(ctx, body); err != nil {
		h.warnSave(err)
	} else {
		h.term.Color(colorGreen, h.loc.NoteSaved)
	}
	h.term.Pause(h.loc.PressEnter)
	return nil
}

var editFields = map[string]domain.LessonField{
	"1": domain.FieldExplanation,
	"2": domain.FieldCode,
	"3": domain.FieldChallenge,
	"4": domain.FieldSolution,
}

// editContent runs the instructor menu. Any choice outside 1-4 cancels.
func (h *Handler) editContent(ctx context.Context) error {
	defer h.term.Pause(h.loc.PressEnter)

	h.term.Color(colorYellow, h.loc.InstructorMode)
	secret, err := h.term.Prompt(h.loc.InstructorPassword)
	if err != nil {
		return err
	}
	if err := h.tutor.Authorize(secret); err != nil {
		h.term.Color(colorRed, h.loc.WrongPassword)
		return nil
	}
	h.term.Color(colorGreen, h.loc.AccessGranted)
	h.term.Println(h.loc.EditMenu)
	choice, err := h.term.ReadLine()
	if err != nil {
		return err
	}
	field, ok := editFields[strings.TrimSpace(choice)]
	if !ok {
		return nil
	}
	h.term.Println(h.loc.EditContentPrompt)
	text, err := h.term.ReadLine()
	if err != nil {
		return err
	}
	if err := h.tutor.EditContent(ctx, secret, field, text); err != nil {
		h.logger.Printf("edit content: %v", err)
		h.term.Color(colorRed, h.loc.InvalidCommand)
		return nil
	}
	h.term.Color(colorGreen, h.loc.ContentUpdated)
	return nil
}

func (h *Handler) importLesson(ctx context.Context) error {
	path, err := h.term.Prompt(h.loc.ImportPrompt)
	if err != nil {
		return err
	}
	if _, err := h.tutor.ImportLesson(ctx, strings.TrimSpace(path)); err != nil {
		h.term.Color(colorRed, h.loc.ImportFailed)
	} else {
		h.term.Color(colorGreen, h.loc.ImportSuccess)
	}
	h.term.Pause(h.loc.PressEnter)
	return nil
}

// completeLevel shows the level summary, runs the quiz and asks whether to
// repeat the level or move on.
func (h *Handler) completeLevel(ctx context.Context) (bool, error) {
	nav := h.tutor.Navigator()
	n := nav.LessonCount()
	h.term.Color(colorMagenta, fmt.Sprintf(h.loc.LevelCompleted, nav.Level().Name))
	h.term.Type(fmt.Sprintf(h.loc.LevelAnswered, n, n))
	h.term.Type(fmt.Sprintf(h.loc.LevelXP, h.tutor.Record().XP))
	h.term.Type(h.loc.LevelGreat)
	h.term.Pause(h.loc.QuizStart)

	if _, err := h.tutor.RunQuiz(ctx, &quizPrompter{h: h}); err != nil {
		if errors.Is(err, io.EOF) {
			return true, err
		}
		h.warnSave(err)
	}

	input, err := h.term.Prompt("\n" + h.loc.LevelNextPrompt)
	if err != nil {
		return true, err
	}
	switch strings.TrimSpace(input) {
	case h.loc.LevelRetryToken:
		if err := h.tutor.RetryLevel(ctx); err != nil {
			h.warnSave(err)
		}
	case h.loc.LevelNextToken:
		ok, err := h.tutor.ProceedLevel(ctx)
		if err != nil {
			h.warnSave(err)
		}
		if !ok {
			h.term.Color(colorGreen, h.loc.CurriculumDone)
			h.term.Println(h.loc.Goodbye)
			return true, nil
		}
	}
	return false, nil
}
