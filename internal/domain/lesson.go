package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Lesson struct {
	Explanation    string `yaml:"explanation"`
	Code           string `yaml:"code"`
	Challenge      string `yaml:"challenge"`
	Solution       string `yaml:"solution"`
	ExpectedOutput string `yaml:"expected_output"`
	Hint           string `yaml:"hint"`
	RelatedTitle   string `yaml:"related_title,omitempty"`
	RelatedLevel   string `yaml:"related_level,omitempty"`
}

// Title is the first line of the explanation.
func (l Lesson) Title() string {
	title, _, _ := strings.Cut(l.Explanation, "\n")
	return title
}

// Summary is everything after the title line.
func (l Lesson) Summary() string {
	_, summary, _ := strings.Cut(l.Explanation, "\n")
	return summary
}

func (l Lesson) HasRelated() bool {
	return l.RelatedTitle != "" && l.RelatedLevel != ""
}

type Level struct {
	Name    string   `yaml:"name"`
	Lessons []Lesson `yaml:"lessons"`
}

// Catalog is the ordered curriculum for one language.
type Catalog struct {
	Levels []Level `yaml:"levels"`
}

func (c *Catalog) Validate() error {
	if len(c.Levels) == 0 {
		return errors.New("catalog has no levels")
	}
	for i, lvl := range c.Levels {
		if len(lvl.Lessons) == 0 {
			return fmt.Errorf("level %d (%s) has no lessons", i, lvl.Name)
		}
	}
	return nil
}

func (c *Catalog) LessonCount(level int) int {
	if level < 0 || level >= len(c.Levels) {
		return 0
	}
	return len(c.Levels[level].Lessons)
}

func (c *Catalog) Lesson(level, lesson int) (Lesson, bool) {
	if lesson < 0 || lesson >= c.LessonCount(level) {
		return Lesson{}, false
	}
	return c.Levels[level].Lessons[lesson], true
}

// Append adds a lesson to the end of a level and returns its index.
func (c *Catalog) Append(level int, l Lesson) (int, error) {
	if level < 0 || level >= len(c.Levels) {
		return 0, fmt.Errorf("level %d out of range", level)
	}
	c.Levels[level].Lessons = append(c.Levels[level].Lessons, l)
	return len(c.Levels[level].Lessons) - 1, nil
}

type LessonField int

const (
	FieldExplanation LessonField = iota + 1
	FieldCode
	FieldChallenge
	FieldSolution
)

func (f LessonField) String() string {
	switch f {
	case FieldExplanation:
		return "explanation"
	case FieldCode:
		return "code"
	case FieldChallenge:
		return "challenge"
	case FieldSolution:
		return "solution"
	default:
		return "unknown"
	}
}

// Edit overwrites exactly one field of the lesson at (level, lesson).
func (c *Catalog) Edit(level, lesson int, field LessonField, text string) error {
	if lesson < 0 || lesson >= c.LessonCount(level) {
		return fmt.Errorf("lesson %d/%d out of range", level, lesson)
	}
	l := &c.Levels[level].Lessons[lesson]
	switch field {
	case FieldExplanation:
		l.Explanation = text
	case FieldCode:
		l.Code = text
	case FieldChallenge:
		l.Challenge = text
	case FieldSolution:
		l.Solution = text
	default:
		return fmt.Errorf("unknown lesson field %d", field)
	}
	return nil
}
