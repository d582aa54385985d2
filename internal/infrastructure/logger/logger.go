package logger

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	// File is the log path. Empty discards all output.
	File       string
	MaxSizeMB  int
	MaxBackups int
	Prefix     string
}

// New returns a logger writing to a size-rotated file, keeping the terminal
// free for the lesson screen. The returned closer flushes the file.
func New(cfg Config) (*log.Logger, io.Closer) {
	if cfg.Prefix == "" {
		cfg.Prefix = "[cpptutor] "
	}
	if cfg.File == "" {
		return log.New(io.Discard, cfg.Prefix, 0), io.NopCloser(nil)
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 5
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	return log.New(w, cfg.Prefix, log.LstdFlags|log.Lshortfile), w
}
