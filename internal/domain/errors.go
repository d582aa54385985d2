package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCommand  = errors.New("invalid command")
	ErrBoundaryReached = errors.New("boundary reached")
	ErrAtFirstLesson   = fmt.Errorf("%w: at first lesson", ErrBoundaryReached)
	ErrAtLastLesson    = fmt.Errorf("%w: at last lesson", ErrBoundaryReached)
	ErrNoBookmark      = errors.New("no bookmark set")
	ErrImportFailed    = errors.New("lesson import failed")
	ErrAuthFailed      = errors.New("instructor authentication failed")
	ErrMalformedRecord = errors.New("malformed stored progress record")
	ErrNoProgress      = errors.New("no stored progress")
)
