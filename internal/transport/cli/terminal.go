package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[1;34m"
	colorMagenta = "\033[1;35m"
	colorCyan    = "\033[1;36m"
)

// Terminal is line-oriented I/O with optional typing animation. When the
// output is not a terminal it prints plain lines and never clears the screen.
type Terminal struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	delay       time.Duration
}

func NewTerminal(in io.Reader, out io.Writer, interactive bool, delay time.Duration) *Terminal {
	if !interactive {
		delay = 0
	}
	return &Terminal{in: bufio.NewReader(in), out: out, interactive: interactive, delay: delay}
}

// NewStdTerminal wraps stdin/stdout, enabling ANSI output on Windows consoles.
func NewStdTerminal(delay time.Duration) *Terminal {
	fd := os.Stdout.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	var out io.Writer = colorable.NewColorableStdout()
	if !interactive {
		out = colorable.NewNonColorable(os.Stdout)
	}
	return NewTerminal(os.Stdin, out, interactive, delay)
}

// ReadLine returns one line without its terminator. io.EOF is returned only
// when no more input is available.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) Prompt(text string) (string, error) {
	fmt.Fprint(t.out, text)
	return t.ReadLine()
}

// Pause waits for Enter on an interactive terminal. Piped input is never
// consumed by a pause.
func (t *Terminal) Pause(text string) {
	if !t.interactive {
		return
	}
	fmt.Fprint(t.out, "\n"+text)
	_, _ = t.ReadLine()
	fmt.Fprintln(t.out)
}

func (t *Terminal) Println(a ...any) {
	fmt.Fprintln(t.out, a...)
}

// Color prints one line wrapped in an ANSI color.
func (t *Terminal) Color(color, text string) {
	fmt.Fprintln(t.out, color+text+colorReset)
}

// Type prints text one rune at a time, then a newline.
func (t *Terminal) Type(text string) {
	if t.delay <= 0 {
		fmt.Fprintln(t.out, text)
		return
	}
	for _, r := range text {
		fmt.Fprint(t.out, string(r))
		time.Sleep(t.delay)
	}
	fmt.Fprintln(t.out)
}

func (t *Terminal) Clear() {
	if !t.interactive {
		return
	}
	fmt.Fprint(t.out, "\033[H\033[2J")
}
