package clack

import (
	"bytes"
	"io"
)

// mockTerminal implements Terminal for tests.
//
// Input is a scripted string decoded by the same key decoder the real terminal
// uses, so escape sequences such as "\x1b[B" arrive as KeyDown. A trailing
// "\x1b" with nothing after it decodes as a lone Escape. Output is captured
// and the number of lines erased by each redraw is recorded.
type mockTerminal struct {
	ansiOutput
	input        []rune // Scripted input sequence
	inputPos     int    // Current position in the input sequence
	output       *bytes.Buffer
	terminalSize [2]int // Fixed terminal dimensions [width, height]
	sizeErr      error  // Returned by Size when set
	interactive  bool
	cleared      []int // Argument of every ClearLastLines call
	cursorHidden bool
}

func newMockTerminal(input string) *mockTerminal {
	output := &bytes.Buffer{}
	return &mockTerminal{
		ansiOutput:   ansiOutput{w: output},
		input:        []rune(input),
		output:       output,
		terminalSize: [2]int{defaultWidth, defaultHeight},
		interactive:  true,
	}
}

func (m *mockTerminal) ReadRune() (rune, error) {
	if m.inputPos >= len(m.input) {
		return 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, nil
}

func (m *mockTerminal) Buffered() bool {
	return m.inputPos < len(m.input)
}

func (m *mockTerminal) ReadKey() (Key, error) {
	return decodeKey(m)
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], m.sizeErr
}

func (m *mockTerminal) ClearLastLines(n int) error {
	m.cleared = append(m.cleared, n)
	return m.ansiOutput.ClearLastLines(n)
}

func (m *mockTerminal) HideCursor() error {
	m.cursorHidden = true
	return m.ansiOutput.HideCursor()
}

func (m *mockTerminal) ShowCursor() error {
	m.cursorHidden = false
	return m.ansiOutput.ShowCursor()
}

func (m *mockTerminal) IsTerminal() bool {
	return m.interactive
}

// consumed reports how many input runes were read.
func (m *mockTerminal) consumed() int {
	return m.inputPos
}
