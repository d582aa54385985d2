package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"cpptutor/config"
	"cpptutor/internal/application/usecase"
	"cpptutor/internal/infrastructure/cache"
	"cpptutor/internal/infrastructure/content"
	"cpptutor/internal/infrastructure/logger"
	"cpptutor/internal/infrastructure/parser"
	"cpptutor/internal/infrastructure/repository"
	"cpptutor/internal/infrastructure/security"
	transport "cpptutor/internal/transport/cli"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
)

const (
	backupTTL = 30 * 24 * time.Hour

	exitInterrupted = 130
)

func main() {
	app := &cli.App{
		Name:  "cpptutor",
		Usage: "interactive C++ lessons in English and Arabic",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: ".",
				Usage: "directory holding app.env",
			},
		},
		Action: runSession,
		Commands: []*cli.Command{
			{
				Name:   "notes",
				Usage:  "print saved lesson notes",
				Action: printNotes,
			},
			{
				Name:   "reset",
				Usage:  "delete stored progress",
				Action: resetProgress,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("cpptutor: %v", err)
	}
}

type deps struct {
	tutor   *usecase.Tutor
	handler *transport.Handler
	logger  *log.Logger
	closers []io.Closer
	once    sync.Once
}

func (a *deps) Close() {
	a.once.Do(func() {
		for i := len(a.closers) - 1; i >= 0; i-- {
			_ = a.closers[i].Close()
		}
	})
}

func runSession(c *cli.Context) error {
	a, err := bootstrap(c.Context, c.String("config"))
	if err != nil {
		return err
	}
	stop := handleSignals(a.logger, a.Close, os.Exit)
	defer stop()
	defer a.Close()
	return a.handler.Run(c.Context)
}

// handleSignals closes the stores and exits with exitInterrupted on SIGINT or
// SIGTERM, even while the session is blocked reading the terminal.
func handleSignals(lg *log.Logger, cleanup func(), exit func(int)) (stop func()) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go exitOnSignal(sig, lg, cleanup, exit)
	return func() {
		signal.Stop(sig)
		close(sig)
	}
}

func exitOnSignal(sig <-chan os.Signal, lg *log.Logger, cleanup func(), exit func(int)) {
	s, ok := <-sig
	if !ok {
		return
	}
	lg.Printf("received %v, exiting", s)
	cleanup()
	exit(exitInterrupted)
}

func printNotes(c *cli.Context) error {
	a, err := bootstrap(c.Context, c.String("config"))
	if err != nil {
		return err
	}
	defer a.Close()
	return a.handler.ShowNotes(c.Context)
}

func resetProgress(c *cli.Context) error {
	a, err := bootstrap(c.Context, c.String("config"))
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.tutor.Reset(c.Context); err != nil {
		return err
	}
	fmt.Println("Progress reset.")
	return nil
}

func bootstrap(ctx context.Context, configPath string) (*deps, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	lg, logCloser := logger.New(logger.Config{File: cfg.LogPath(), MaxSizeMB: cfg.LogMaxSizeMB})
	a := &deps{logger: lg, closers: []io.Closer{logCloser}}

	profileID, err := uuid.Parse(cfg.ProfileID)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("profile id: %w", err)
	}

	var (
		progress usecase.ProgressStore
		notes    usecase.NoteStore
		sinks    usecase.BackupSinks
	)
	switch cfg.StoreDriver {
	case config.DriverFile:
		progress = repository.NewProgressFileRepository(cfg.ProgressPath())
		notes = repository.NewNotesFileRepository(cfg.NotesPath())
		sinks = append(sinks, repository.NewBackupFileRepository(cfg.BackupPath()))
	default:
		db, err := repository.OpenDB(cfg.StoreDriver, cfg.DBDSN)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB)
		}
		progress = repository.NewProgressRepository(db, profileID)
		notes = repository.NewNotesRepository(db, profileID)
		sinks = append(sinks, repository.NewBackupRepository(db, profileID))
	}
	lg.Printf("store driver %s, profile %s", cfg.StoreDriver, profileID)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			// the local sink still takes the backup
			lg.Printf("redis %s unavailable: %v", cfg.RedisAddr, err)
			_ = rdb.Close()
		} else {
			a.closers = append(a.closers, rdb)
			sinks = append(sinks, cache.NewBackupCache(rdb, profileID.String(), backupTTL))
		}
	}

	credential, err := security.NewInstructorCredential(security.NewPasswordHasher(), cfg.InstructorPasswordHash, cfg.InstructorPassword)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("instructor credential: %w", err)
	}

	catalogs, err := content.Load(cfg.ContentDir)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load lessons: %w", err)
	}

	a.tutor = usecase.NewTutor(catalogs, progress, notes, sinks, credential, parser.NewLessonFileImporter(), lg, time.Now)
	term := transport.NewStdTerminal(time.Duration(cfg.TypingDelayMS) * time.Millisecond)
	a.handler = transport.NewHandler(a.tutor, term, lg)
	return a, nil
}
