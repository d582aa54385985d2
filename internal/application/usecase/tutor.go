package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cpptutor/internal/domain"
)

var errNoBackupSink = errors.New("no backup sink configured")

// Tutor is the session context threaded through a run: the learner record,
// the catalogs, and every store the navigation loop writes to.
type Tutor struct {
	catalogs    map[domain.Language]*domain.Catalog
	store       ProgressStore
	notes       NoteStore
	backup      BackupSink
	credentials CredentialChecker
	importer    LessonImporter
	logger      *log.Logger
	now         func() time.Time

	rec *domain.ProgressRecord
	nav *Navigator
}

func NewTutor(
	catalogs map[domain.Language]*domain.Catalog,
	ps ProgressStore,
	ns NoteStore,
	bs BackupSink,
	cc CredentialChecker,
	li LessonImporter,
	logger *log.Logger,
	now func() time.Time,
) *Tutor {
	if now == nil {
		now = time.Now
	}
	return &Tutor{
		catalogs:    catalogs,
		store:       ps,
		notes:       ns,
		backup:      bs,
		credentials: cc,
		importer:    li,
		logger:      logger,
		now:         now,
	}
}

func (t *Tutor) Record() *domain.ProgressRecord { return t.rec }

func (t *Tutor) Navigator() *Navigator { return t.nav }

// StartSession loads the stored record and reconciles it with the current
// date. A missing or unreadable record starts a first run, asking for the
// daily goal through askGoal.
func (t *Tutor) StartSession(ctx context.Context, askGoal func() (string, error)) (SessionReport, error) {
	now := t.now()
	rec, err := t.store.Load(ctx)
	switch {
	case err == nil:
		report := ReconcileSession(rec, now)
		t.rec = rec
		t.clamp()
		t.logger.Printf("session %d started (day rollover=%t, week rollover=%t)", rec.SessionsCount, report.DayRolledOver, report.WeekRolledOver)
		if err := t.save(ctx); err != nil {
			return report, err
		}
		if report.Backup {
			report.BackupErr = t.createBackup(ctx)
		}
		return report, nil
	case errors.Is(err, domain.ErrNoProgress), errors.Is(err, domain.ErrMalformedRecord):
		report := SessionReport{FirstRun: true, Malformed: errors.Is(err, domain.ErrMalformedRecord)}
		if report.Malformed {
			t.logger.Printf("stored progress ignored: %v", err)
		}
		input, askErr := askGoal()
		if askErr != nil {
			return report, fmt.Errorf("read daily goal: %w", askErr)
		}
		t.rec, report.GoalDefaulted = NewFirstRunRecord(input, now)
		t.logger.Printf("first run, daily goal %d", t.rec.DailyGoal)
		return report, t.save(ctx)
	default:
		return SessionReport{}, fmt.Errorf("load progress: %w", err)
	}
}

// createBackup copies the persisted record to the backup sink. Failures are
// logged and reported but never end the session.
func (t *Tutor) createBackup(ctx context.Context) error {
	if t.backup == nil {
		return errNoBackupSink
	}
	snapshot, err := t.store.Snapshot(ctx)
	if err != nil {
		t.logger.Printf("backup skipped: %v", err)
		return fmt.Errorf("snapshot progress: %w", err)
	}
	if err := t.backup.Backup(ctx, snapshot); err != nil {
		t.logger.Printf("backup failed: %v", err)
		return fmt.Errorf("backup progress: %w", err)
	}
	t.logger.Printf("backup created (%d bytes)", len(snapshot))
	return nil
}

func (t *Tutor) NeedsLanguage() bool { return !t.rec.Language.Valid() }

func (t *Tutor) SetLanguage(ctx context.Context, lang domain.Language) error {
	if !lang.Valid() {
		return domain.ErrInvalidCommand
	}
	t.rec.Language = lang
	t.clamp()
	return t.save(ctx)
}

// Catalog is the curriculum for the record's language.
func (t *Tutor) Catalog() *domain.Catalog {
	if c, ok := t.catalogs[t.rec.Language]; ok {
		return c
	}
	return t.catalogs[domain.English]
}

func (t *Tutor) SetLevel(ctx context.Context, level int) error {
	if level < 0 || level >= len(t.Catalog().Levels) {
		return domain.ErrInvalidCommand
	}
	if level != t.rec.Level {
		t.rec.Bookmark = domain.NoBookmark
	}
	t.rec.Level = level
	t.rec.Lesson = 0
	t.clamp()
	return t.save(ctx)
}

// Begin starts the lesson loop in the chosen mode.
func (t *Tutor) Begin(mode domain.Mode) *Navigator {
	t.nav = NewNavigator(t.Catalog(), t.rec, mode)
	return t.nav
}

// Dispatch applies one navigation command. Commands that need extra input
// (notes, edits, imports) have their own methods.
func (t *Tutor) Dispatch(ctx context.Context, cmd domain.Command) (Outcome, error) {
	var (
		out Outcome
		err error
	)
	switch cmd {
	case domain.CmdAdvance:
		out, err = t.nav.Advance()
	case domain.CmdRetreat:
		out, err = t.nav.Retreat()
	case domain.CmdSetBookmark:
		out = t.nav.SetBookmark()
	case domain.CmdJumpToBookmark:
		out, err = t.nav.JumpToBookmark()
	case domain.CmdToggleReview:
		err = t.nav.ToggleReview()
	case domain.CmdQuit:
		if t.nav.Review() {
			err = t.nav.ToggleReview()
		} else {
			out.Quit = true
		}
	case domain.CmdRepeat, domain.CmdShowCode, domain.CmdShowSolution, domain.CmdListNotes:
	default:
		err = domain.ErrInvalidCommand
	}
	if err != nil {
		return out, err
	}
	return out, t.persist(ctx, out)
}

func (t *Tutor) SubmitChallenge(ctx context.Context, answer string) (Outcome, bool, error) {
	out, ok := t.nav.Answer(answer)
	return out, ok, t.persist(ctx, out)
}

func (t *Tutor) SkipChallenge(ctx context.Context) (Outcome, error) {
	out := t.nav.Skip()
	return out, t.persist(ctx, out)
}

func (t *Tutor) AddNote(ctx context.Context, body string) error {
	note := domain.NewNote(t.now(), t.rec, body)
	if err := t.notes.Append(ctx, note); err != nil {
		return fmt.Errorf("append note: %w", err)
	}
	return nil
}

func (t *Tutor) Notes(ctx context.Context) ([]string, error) {
	return t.notes.List(ctx)
}

// EditContent overwrites one field of the current lesson after checking the
// instructor secret. Edits live in memory only.
func (t *Tutor) EditContent(ctx context.Context, secret string, field domain.LessonField, text string) error {
	if err := t.Authorize(secret); err != nil {
		return err
	}
	if err := t.Catalog().Edit(t.rec.Level, t.rec.Lesson, field, text); err != nil {
		return err
	}
	t.logger.Printf("instructor edit: level %d lesson %d %s", t.rec.Level, t.rec.Lesson+1, field)
	return nil
}

// Authorize checks the instructor secret without editing anything, so the
// terminal can refuse before asking for the new content.
func (t *Tutor) Authorize(secret string) error {
	if err := t.credentials.Check(secret); err != nil {
		t.logger.Printf("instructor authentication failed")
		return domain.ErrAuthFailed
	}
	return nil
}

// ImportLesson appends a lesson read from path to the current level and
// returns its 0-based index.
func (t *Tutor) ImportLesson(ctx context.Context, path string) (int, error) {
	lesson, err := t.importer.Import(path)
	if err != nil {
		t.logger.Printf("import %s: %v", path, err)
		return 0, fmt.Errorf("%w: %v", domain.ErrImportFailed, err)
	}
	idx, err := t.Catalog().Append(t.rec.Level, lesson)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrImportFailed, err)
	}
	t.logger.Printf("imported %q into level %d as lesson %d", lesson.Title(), t.rec.Level, idx+1)
	return idx, nil
}

func (t *Tutor) RunQuiz(ctx context.Context, io QuizIO) ([]QuizResult, error) {
	attempts, err := RunQuiz(t.nav.Level(), t.rec, io)
	gained := 0
	for _, a := range attempts {
		gained += a.XPGained
	}
	if gained > 0 {
		if saveErr := t.save(ctx); saveErr != nil && err == nil {
			err = saveErr
		}
	}
	return attempts, err
}

func (t *Tutor) RetryLevel(ctx context.Context) error {
	return t.persist(ctx, t.nav.RestartLevel())
}

// ProceedLevel moves to the next level, reporting false when the curriculum
// is finished.
func (t *Tutor) ProceedLevel(ctx context.Context) (bool, error) {
	out, ok := t.nav.NextLevel()
	if !ok {
		return false, nil
	}
	return true, t.persist(ctx, out)
}

// Reset removes the stored record.
func (t *Tutor) Reset(ctx context.Context) error {
	if err := t.store.Reset(ctx); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	t.logger.Printf("progress reset")
	return nil
}

func (t *Tutor) clamp() {
	t.rec.Clamp(t.Catalog())
}

func (t *Tutor) persist(ctx context.Context, out Outcome) error {
	if !out.Changed {
		return nil
	}
	return t.save(ctx)
}

func (t *Tutor) save(ctx context.Context) error {
	t.rec.Version = domain.RecordVersion
	if err := t.store.Save(ctx, t.rec); err != nil {
		t.logger.Printf("save progress: %v", err)
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
