package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cpptutor/internal/domain"
)

const lessonFileLines = 7

var ErrMalformedLesson = errors.New("malformed lesson file")

// LessonFileImporter reads lessons from plain text files of seven lines:
// title, explanation, code, challenge, solution, expected output, hint.
type LessonFileImporter struct{}

func NewLessonFileImporter() *LessonFileImporter {
	return &LessonFileImporter{}
}

func (p *LessonFileImporter) Import(path string) (domain.Lesson, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Lesson{}, err
	}
	defer f.Close()
	return ParseLesson(f)
}

func ParseLesson(r io.Reader) (domain.Lesson, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return domain.Lesson{}, err
	}
	for len(lines) > lessonFileLines && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != lessonFileLines {
		return domain.Lesson{}, fmt.Errorf("%w: want %d lines, got %d", ErrMalformedLesson, lessonFileLines, len(lines))
	}
	title := strings.TrimSpace(lines[0])
	if title == "" {
		return domain.Lesson{}, fmt.Errorf("%w: empty title", ErrMalformedLesson)
	}

	return domain.Lesson{
		Explanation:    title + "\n" + lines[1],
		Code:           lines[2],
		Challenge:      lines[3],
		Solution:       lines[4],
		ExpectedOutput: lines[5],
		Hint:           lines[6],
	}, nil
}
