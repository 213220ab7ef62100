package clack

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

var (
	stActive = ThemeState{Kind: StateActive}
	stSubmit = ThemeState{Kind: StateSubmit}
	stCancel = ThemeState{Kind: StateCancel}
	stError  = ThemeState{Kind: StateError, Message: "Input required"}
)

func plainTheme() *ClackTheme {
	return NewClackTheme(nil).WithProfile(termenv.Ascii)
}

func TestClackThemePlain(t *testing.T) {
	t.Parallel()

	theme := plainTheme()
	cursor := func(text string, pos int) *TextCursor {
		c := NewTextCursor(text)
		c.SetMultiline(true)
		for c.Position() > pos {
			c.MoveLeft()
		}
		return c
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "active header", got: theme.FormatHeader(stActive, "Name?"), expected: "◆  Name?\n"},
		{name: "submitted header", got: theme.FormatHeader(stSubmit, "Name?"), expected: "◇  Name?\n"},
		{name: "cancelled header", got: theme.FormatHeader(stCancel, "Name?"), expected: "■  Name?\n"},
		{name: "error header", got: theme.FormatHeader(stError, "Name?"), expected: "▲  Name?\n"},

		{name: "active footer", got: theme.FormatFooter(stActive, ""), expected: "└\n"},
		{name: "active footer with hint", got: theme.FormatFooter(stActive, "[Tab] => View"), expected: "└  [Tab] => View\n"},
		{name: "submitted footer", got: theme.FormatFooter(stSubmit, "ignored"), expected: "│\n"},
		{name: "cancelled footer", got: theme.FormatFooter(stCancel, "ignored"), expected: "└  Operation cancelled.\n"},
		{name: "error footer", got: theme.FormatFooter(stError, "ignored"), expected: "└  Input required\n"},

		{name: "input with cursor at the end", got: theme.FormatInput(stActive, cursor("abc", 3)), expected: "│  abc \n"},
		{name: "input with cursor inside", got: theme.FormatInput(stActive, cursor("abc", 1)), expected: "│  abc\n"},
		{name: "empty input", got: theme.FormatInput(stActive, cursor("", 0)), expected: "│   \n"},
		{name: "multiline input", got: theme.FormatInput(stActive, cursor("ab\ncd", 1)), expected: "│  ab\n│  cd\n"},
		{name: "submitted input", got: theme.FormatInput(stSubmit, cursor("abc", 3)), expected: "│  abc\n"},
		{name: "cancelled input", got: theme.FormatInput(stCancel, cursor("abc", 3)), expected: "│  abc\n"},
		{name: "placeholder", got: theme.FormatPlaceholder(stActive, cursor("./app", 0)), expected: "│  ./app\n"},

		{name: "active select item", got: theme.FormatSelectItem(stActive, true, "Go", "fast"), expected: "│  ● Go (fast)\n"},
		{name: "inactive select item", got: theme.FormatSelectItem(stActive, false, "Go", "fast"), expected: "│  ○ Go\n"},
		{name: "submitted select item", got: theme.FormatSelectItem(stSubmit, true, "Go", "fast"), expected: "│  Go\n"},
		{name: "submitted other item", got: theme.FormatSelectItem(stSubmit, false, "Go", ""), expected: ""},
		{name: "cancelled select item", got: theme.FormatSelectItem(stCancel, true, "Go", ""), expected: "│  Go\n"},

		{name: "active checkbox", got: theme.FormatMultiSelectItem(stActive, false, true, "Go", "fast"), expected: "│  ◻ Go (fast)\n"},
		{name: "selected checkbox", got: theme.FormatMultiSelectItem(stActive, true, false, "Go", "fast"), expected: "│  ◼ Go\n"},
		{name: "submitted selected", got: theme.FormatMultiSelectItem(stSubmit, true, false, "Go", ""), expected: "│  Go\n"},
		{name: "submitted unselected", got: theme.FormatMultiSelectItem(stSubmit, false, true, "Go", ""), expected: ""},
		{name: "cancelled unselected", got: theme.FormatMultiSelectItem(stCancel, false, true, "Go", ""), expected: ""},

		{name: "confirm yes", got: theme.FormatConfirm(stActive, true), expected: "│  ● Yes / ○ No\n"},
		{name: "confirm no", got: theme.FormatConfirm(stActive, false), expected: "│  ○ Yes / ● No\n"},
		{name: "submitted confirm", got: theme.FormatConfirm(stSubmit, true), expected: "│  Yes\n"},
		{name: "cancelled confirm", got: theme.FormatConfirm(stCancel, false), expected: "│  No\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.got)
		})
	}

	assert.Equal(t, '▪', theme.PasswordMask())
}

// primaries has a distinct 0/255 color per role so sequences are exact.
var primaries = &ColorScheme{
	Name:     "primaries",
	Active:   Color{R: 0, G: 255, B: 255, Bold: true},
	Submit:   Color{R: 0, G: 255, B: 0},
	Cancel:   Color{R: 255, G: 0, B: 0},
	Error:    Color{R: 255, G: 255, B: 0},
	Selected: Color{R: 255, G: 0, B: 255},
	Hint:     Color{R: 0, G: 0, B: 255},
	Input:    Color{R: 255, G: 255, B: 255},
}

func TestClackThemeColors(t *testing.T) {
	t.Parallel()

	theme := NewClackTheme(primaries).WithProfile(termenv.TrueColor)
	const (
		cyanBold = "\x1b[1;38;2;0;255;255m"
		green    = "\x1b[38;2;0;255;0m"
		red      = "\x1b[38;2;255;0;0m"
		blue     = "\x1b[38;2;0;0;255m"
		white    = "\x1b[38;2;255;255;255m"
		reverse  = "\x1b[7m"
		reset    = "\x1b[0m"
	)

	assert.Equal(t, cyanBold+"◆"+reset+"  Name?\n", theme.FormatHeader(stActive, "Name?"))
	assert.Equal(t, green+"◇"+reset+"  Name?\n", theme.FormatHeader(stSubmit, "Name?"))
	assert.Equal(t, red+"└  Operation cancelled."+reset+"\n", theme.FormatFooter(stCancel, ""))

	c := NewTextCursor("ab")
	c.MoveLeft()
	assert.Equal(t, cyanBold+"│"+reset+"  "+white+"a"+reset+reverse+"b"+reset+"\n", theme.FormatInput(stActive, c))

	multi := NewTextCursor("ab\ncd")
	multi.SetMultiline(true)
	assert.Equal(t,
		blue+"│"+reset+"  "+blue+"ab"+reset+"\n"+blue+"│"+reset+"  "+blue+"cd"+reset+"\n",
		theme.FormatInput(stSubmit, multi),
		"each line is painted on its own",
	)

	assert.Equal(t, red+"│"+reset+"  "+"\x1b[9;38;2;0;0;255m"+"Go"+reset+"\n", theme.FormatSelectItem(stCancel, true, "Go", ""))
}

func TestClackThemeNoColor(t *testing.T) {
	t.Parallel()

	theme := NewClackTheme(primaries).WithProfile(termenv.Ascii)
	out := theme.FormatHeader(stActive, "Q") + theme.FormatInput(stActive, NewTextCursor("x")) + theme.FormatFooter(stError, "")
	assert.NotContains(t, out, "\x1b")
}

func TestClackThemeCaretWithoutColor(t *testing.T) {
	t.Parallel()

	theme := NewClackTheme(primaries)
	theme.profile = termenv.Ascii

	c := NewTextCursor("ab")
	c.MoveLeft()
	assert.Equal(t, "│  a\x1b[7mb\x1b[0m\n", theme.FormatInput(stActive, c))
	assert.Equal(t, "│  ab\x1b[7m \x1b[0m\n", theme.FormatInput(stActive, NewTextCursor("ab")))
	assert.Equal(t, "│  ▪\x1b[7m▪\x1b[0m\n", theme.FormatInput(stActive, c.Masked('▪')))
	assert.Equal(t, "◆  Name?\n", theme.FormatHeader(stActive, "Name?"), "no color is emitted")
	assert.Equal(t, "│  ab\n", theme.FormatInput(stSubmit, c), "only active frames draw the caret")
}

func TestNewClackThemeHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	theme := NewClackTheme(primaries)
	assert.Equal(t, termenv.Ascii, theme.profile)
	assert.Contains(t, theme.FormatInput(stActive, NewTextCursor("x")), "\x1b[7m \x1b[0m", "the caret stays visible")
	assert.NotContains(t, theme.FormatHeader(stActive, "Q"), "\x1b")
}
