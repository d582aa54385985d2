package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"cpptutor/internal/application/usecase"
	"cpptutor/internal/domain"
)

const separator = "================"

// Handler drives one interactive session on a Terminal. It owns only
// presentation; every state change goes through the Tutor.
type Handler struct {
	tutor  *usecase.Tutor
	term   *Terminal
	logger *log.Logger
	loc    *Locale
}

func NewHandler(tutor *usecase.Tutor, term *Terminal, logger *log.Logger) *Handler {
	return &Handler{tutor: tutor, term: term, logger: logger, loc: English}
}

// Run starts the session and blocks until the learner quits or input ends.
func (h *Handler) Run(ctx context.Context) error {
	err := h.run(ctx)
	if errors.Is(err, io.EOF) {
		h.logger.Printf("input closed, ending session")
		return nil
	}
	return err
}

func (h *Handler) run(ctx context.Context) error {
	report, err := h.tutor.StartSession(ctx, func() (string, error) {
		h.term.Clear()
		return h.term.Prompt(h.loc.GoalPrompt)
	})
	if err != nil {
		return err
	}
	h.loc = LocaleFor(h.tutor.Record().Language)
	h.showReport(report)

	if h.tutor.NeedsLanguage() {
		if err := h.chooseLanguage(ctx); err != nil {
			return err
		}
	}
	if report.FirstRun {
		if err := h.chooseLevel(ctx); err != nil {
			return err
		}
	}

	mode, err := h.chooseMode()
	if err != nil {
		return err
	}
	h.tutor.Begin(mode)
	if mode == domain.ModeChallenge {
		return h.challengeLoop(ctx)
	}
	return h.trainingLoop(ctx)
}

func (h *Handler) showReport(report usecase.SessionReport) {
	if report.Reminder() {
		h.term.Color(colorYellow, fmt.Sprintf(h.loc.Reminder, report.ReminderDays))
		h.term.Pause(h.loc.PressEnter)
	}
	if report.Backup && report.BackupErr == nil {
		h.term.Color(colorGreen, h.loc.BackupCreated)
	}
	if report.WeeklySummary != nil {
		h.showWeekly(*report.WeeklySummary)
		h.term.Pause(h.loc.PressEnter)
	}
}

func (h *Handler) showWeekly(stats domain.WeeklyStats) {
	h.term.Color(colorCyan, h.loc.WeeklyTitle)
	h.term.Type(separator)
	h.term.Type(fmt.Sprintf(h.loc.WeeklyLessons, stats.Lessons))
	h.term.Type(fmt.Sprintf(h.loc.WeeklyXP, stats.XP))
	h.term.Type(fmt.Sprintf(h.loc.WeeklySessions, stats.Sessions))
	if stats.Sessions > 0 {
		h.term.Type(fmt.Sprintf(h.loc.WeeklyAverage, stats.AverageLessons()))
	}
	h.term.Type(separator)
}

func (h *Handler) chooseLanguage(ctx context.Context) error {
	for {
		h.term.Clear()
		h.term.Println(h.loc.SelectLanguage)
		input, err := h.term.ReadLine()
		if err != nil {
			return err
		}
		var lang domain.Language
		switch strings.TrimSpace(input) {
		case "1":
			lang = domain.English
		case "2":
			lang = domain.Arabic
		default:
			continue
		}
		if err := h.tutor.SetLanguage(ctx, lang); err != nil {
			h.term.Color(colorRed, h.loc.SaveFailed)
		}
		h.loc = LocaleFor(lang)
		h.term.Clear()
		h.term.Type(h.loc.Welcome)
		h.term.Pause(h.loc.PressEnter)
		return nil
	}
}

func (h *Handler) chooseLevel(ctx context.Context) error {
	for {
		h.term.Clear()
		h.term.Println(h.loc.SelectLevel)
		input, err := h.term.ReadLine()
		if err != nil {
			return err
		}
		var level int
		switch strings.TrimSpace(input) {
		case "1":
			level = 0
		case "2":
			level = 1
		case "3":
			level = 2
		default:
			continue
		}
		if err := h.tutor.SetLevel(ctx, level); err != nil {
			if errors.Is(err, domain.ErrInvalidCommand) {
				continue
			}
			h.term.Color(colorRed, h.loc.SaveFailed)
		}
		return nil
	}
}

// chooseMode treats anything but "2" as training.
func (h *Handler) chooseMode() (domain.Mode, error) {
	h.term.Clear()
	h.term.Println(h.loc.SelectMode)
	input, err := h.term.ReadLine()
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(input) == "2" {
		return domain.ModeChallenge, nil
	}
	return domain.ModeTraining, nil
}

// ShowNotes prints the notes log.
func (h *Handler) ShowNotes(ctx context.Context) error {
	notes, err := h.tutor.Notes(ctx)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		h.term.Type(h.loc.NoNotes)
		return nil
	}
	h.term.Type(h.loc.NotesTitle)
	h.term.Type(separator)
	for _, n := range notes {
		h.term.Println(n)
	}
	h.term.Type(separator)
	return nil
}

func (h *Handler) showXP(out usecase.Outcome) {
	rec := h.tutor.Record()
	h.term.Color(colorYellow, fmt.Sprintf(h.loc.GoalProgress, rec.DailyProgress, rec.DailyGoal))
	if out.GoalReached {
		h.term.Color(colorGreen, h.loc.GoalReached)
	}
}

func (h *Handler) warnSave(err error) {
	h.logger.Printf("command failed: %v", err)
	h.term.Color(colorRed, h.loc.SaveFailed)
}
