package clack

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// Terminal is everything the interaction driver needs from a terminal.
//
// The driver never parses escape sequences or decides how keys are encoded:
// ReadKey returns one decoded logical key, and the remaining methods are the
// only screen primitives a prompt issues. Implementations are used from a
// single goroutine.
type Terminal interface {
	ReadKey() (Key, error)                // Block until one logical key is pressed
	Write(p []byte) (int, error)          // Write raw bytes to the screen
	Size() (width, height int, err error) // Current size in columns and rows
	MoveCursorUp(n int) error             // Move the cursor up n lines
	MoveCursorDown(n int) error           // Move the cursor down n lines
	ClearLastLines(n int) error           // Erase the n lines above the cursor and move there
	HideCursor() error
	ShowCursor() error
	IsTerminal() bool // Whether the output is an interactive terminal
}

// Fallback dimensions when the terminal cannot report its size.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// ansiOutput implements the screen primitives of Terminal on top of any writer.
//
// With crlf set, every "\n" written is sent as "\r\n". A tty in raw mode no
// longer returns the carriage on a line feed.
type ansiOutput struct {
	w    io.Writer
	crlf bool
}

func (o ansiOutput) Write(p []byte) (int, error) {
	if !o.crlf || !bytes.Contains(p, []byte("\n")) {
		return o.w.Write(p)
	}
	if _, err := o.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (o ansiOutput) writeString(s string) error {
	_, err := io.WriteString(o.w, s)
	return err
}

func (o ansiOutput) MoveCursorUp(n int) error {
	if n <= 0 {
		return nil
	}
	return o.writeString(ansi.CursorUp(n))
}

func (o ansiOutput) MoveCursorDown(n int) error {
	if n <= 0 {
		return nil
	}
	return o.writeString(ansi.CursorDown(n))
}

// ClearLastLines erases the n lines above the cursor one by one and leaves the
// cursor at the start of the topmost erased line.
func (o ansiOutput) ClearLastLines(n int) error {
	if n <= 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString(ansi.CursorUp(n))
	for i := range n {
		b.WriteString("\r")
		b.WriteString(ansi.EraseEntireLine)
		if i < n-1 {
			b.WriteString(ansi.CursorDown(1))
		}
	}
	if n > 1 {
		b.WriteString(ansi.CursorUp(n - 1))
	}
	b.WriteString("\r")
	return o.writeString(b.String())
}

func (o ansiOutput) HideCursor() error {
	return o.writeString(ansi.HideCursor)
}

func (o ansiOutput) ShowCursor() error {
	return o.writeString(ansi.ShowCursor)
}

// realTerminal reads keys from the controlling tty and draws on stderr.
//
// Prompts are drawn on stderr so that stdout stays clean for the program's
// own output. go-tty supplies key input and size, golang.org/x/term switches
// the tty into raw mode on the first read, and go-colorable translates ANSI
// sequences on Windows.
type realTerminal struct {
	ansiOutput
	tty           *tty.TTY
	out           *os.File
	fd            int
	originalState *term.State
	closed        bool
}

// newRealTerminal opens the controlling tty.
func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stderr
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStderr()
	}

	return &realTerminal{
		ansiOutput: ansiOutput{w: output, crlf: true},
		tty:        t,
		out:        os.Stderr,
		fd:         int(t.Input().Fd()),
	}, nil
}

func (t *realTerminal) setRaw() error {
	if t.originalState != nil || !term.IsTerminal(t.fd) {
		return nil
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.originalState = state
	return nil
}

func (t *realTerminal) restore() error {
	if t.originalState == nil {
		return nil
	}
	err := term.Restore(t.fd, t.originalState)
	t.originalState = nil
	return err
}

func (t *realTerminal) ReadKey() (Key, error) {
	if err := t.setRaw(); err != nil {
		return Key{}, err
	}
	return decodeKey(t.tty)
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight, err
	}
	return w, h, nil
}

func (t *realTerminal) IsTerminal() bool {
	fd := t.out.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Close restores the tty mode and releases it. It is safe to call twice.
func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	restoreErr := t.restore()
	if err := t.tty.Close(); err != nil {
		return err
	}
	return restoreErr
}
