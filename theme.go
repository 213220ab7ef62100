package clack

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ThemeState is the part of a prompt state a Theme needs: the variant and,
// for StateError, the message to show.
type ThemeState struct {
	Kind    StateKind
	Message string
}

// Theme turns interaction state and raw content into printable text.
//
// Every method returns complete lines terminated by "\n", or an empty string
// when nothing should be drawn. Prompts assemble their frame from these
// pieces and never choose glyphs or colors themselves.
type Theme interface {
	// FormatHeader renders the state marker and the prompt question.
	FormatHeader(state ThemeState, prompt string) string
	// FormatFooter closes the prompt. hint is shown on active frames only.
	FormatFooter(state ThemeState, hint string) string
	// FormatInput renders an edit buffer, with the cursor on active frames.
	FormatInput(state ThemeState, cursor *TextCursor) string
	// FormatPlaceholder renders the placeholder of an empty edit buffer.
	FormatPlaceholder(state ThemeState, cursor *TextCursor) string
	// FormatSelectItem renders one radio item of a single choice list.
	FormatSelectItem(state ThemeState, active bool, label, hint string) string
	// FormatMultiSelectItem renders one checkbox item of a multiple choice list.
	FormatMultiSelectItem(state ThemeState, selected, active bool, label, hint string) string
	// FormatConfirm renders the Yes/No switch.
	FormatConfirm(state ThemeState, value bool) string
	// PasswordMask returns the rune replacing each character of a password.
	PasswordMask() rune
}

// Glyphs of the default theme
const (
	symbolStepActive = "◆"
	symbolStepCancel = "■"
	symbolStepError  = "▲"
	symbolStepSubmit = "◇"

	symbolBar    = "│"
	symbolBarEnd = "└"

	symbolRadioActive      = "●"
	symbolRadioInactive    = "○"
	symbolCheckboxActive   = "◻"
	symbolCheckboxSelected = "◼"
	symbolCheckboxInactive = "◻"
)

const symbolPasswordMask = '▪'

const msgCancelled = "Operation cancelled."

// ClackTheme is the default Theme: a vertical bar joining the question, its
// content and a footer, painted with a ColorScheme.
//
// Colors are degraded to what stderr supports. When NO_COLOR is set, output
// has no color but the edit caret is still drawn in reverse video.
type ClackTheme struct {
	scheme  *ColorScheme
	profile termenv.Profile
	caret   bool // Draw the caret in reverse video even without colors
}

var _ Theme = (*ClackTheme)(nil)

// NewClackTheme creates the default theme with the given colors.
// A nil scheme means ThemeDefault.
func NewClackTheme(scheme *ColorScheme) *ClackTheme {
	if scheme == nil {
		scheme = ThemeDefault
	}
	return &ClackTheme{
		scheme:  scheme,
		profile: termenv.NewOutput(os.Stderr).EnvColorProfile(),
		caret:   true,
	}
}

// WithProfile returns a copy of the theme that renders for profile.
// termenv.Ascii produces text without any escape sequence.
func (t *ClackTheme) WithProfile(profile termenv.Profile) *ClackTheme {
	c := *t
	c.profile = profile
	c.caret = profile != termenv.Ascii
	return &c
}

// paint wraps every line of text in the given color and attributes.
func (t *ClackTheme) paint(text string, color *Color, attrs ...string) string {
	if text == "" || t.profile == termenv.Ascii {
		return text
	}

	codes := append([]string(nil), attrs...)
	if color != nil {
		codes = append(codes, color.codes(t.profile)...)
	}
	if len(codes) == 0 {
		return text
	}

	start := termenv.CSI + strings.Join(codes, ";") + "m"
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = start + line + Reset()
		}
	}
	return strings.Join(lines, "\n")
}

func (t *ClackTheme) dim(text string) string {
	return t.paint(text, &t.scheme.Hint)
}

func (t *ClackTheme) strike(text string) string {
	return t.paint(text, &t.scheme.Hint, termenv.CrossOutSeq)
}

// stateColor is the color of the bar and footer in the given state.
func (t *ClackTheme) stateColor(state ThemeState) *Color {
	switch state.Kind {
	case StateCancel:
		return &t.scheme.Cancel
	case StateSubmit:
		return &t.scheme.Hint
	case StateError:
		return &t.scheme.Error
	default:
		return &t.scheme.Active
	}
}

func (t *ClackTheme) bar(state ThemeState) string {
	return t.paint(symbolBar, t.stateColor(state))
}

// line prefixes every line of body with the bar and terminates it.
func (t *ClackTheme) line(state ThemeState, body string) string {
	prefix := t.bar(state) + "  "
	return prefix + strings.ReplaceAll(body, "\n", "\n"+prefix) + "\n"
}

// cursorParts renders the cursor in reverse video between the styled text
// to its left and right.
func (t *ClackTheme) cursorParts(cursor *TextCursor, style func(string) string) string {
	left, under, right := cursor.Split()
	return style(left) + t.reverse(under) + style(right)
}

func (t *ClackTheme) reverse(text string) string {
	if !t.caret {
		return text
	}
	return termenv.CSI + termenv.ReverseSeq + "m" + text + Reset()
}

func (t *ClackTheme) FormatHeader(state ThemeState, prompt string) string {
	var symbol string
	switch state.Kind {
	case StateCancel:
		symbol = t.paint(symbolStepCancel, &t.scheme.Cancel)
	case StateSubmit:
		symbol = t.paint(symbolStepSubmit, &t.scheme.Submit)
	case StateError:
		symbol = t.paint(symbolStepError, &t.scheme.Error)
	default:
		symbol = t.paint(symbolStepActive, &t.scheme.Active)
	}
	return symbol + "  " + prompt + "\n"
}

func (t *ClackTheme) FormatFooter(state ThemeState, hint string) string {
	color := t.stateColor(state)
	switch state.Kind {
	case StateCancel:
		return t.paint(symbolBarEnd+"  "+msgCancelled, color) + "\n"
	case StateSubmit:
		return t.paint(symbolBar, color) + "\n"
	case StateError:
		return t.paint(symbolBarEnd+"  "+state.Message, color) + "\n"
	default:
		if hint == "" {
			return t.paint(symbolBarEnd, color) + "\n"
		}
		return t.paint(symbolBarEnd, color) + "  " + t.dim(hint) + "\n"
	}
}

func (t *ClackTheme) FormatInput(state ThemeState, cursor *TextCursor) string {
	input := func(s string) string { return t.paint(s, &t.scheme.Input) }

	var body string
	switch state.Kind {
	case StateCancel:
		body = t.strike(cursor.String())
	case StateSubmit:
		body = t.dim(cursor.String())
	default:
		body = t.cursorParts(cursor, input)
	}
	return t.line(state, body)
}

func (t *ClackTheme) FormatPlaceholder(state ThemeState, cursor *TextCursor) string {
	var body string
	switch state.Kind {
	case StateCancel, StateSubmit:
		body = t.dim(cursor.String())
	default:
		body = t.cursorParts(cursor, t.dim)
	}
	return t.line(state, body)
}

func (t *ClackTheme) FormatSelectItem(state ThemeState, active bool, label, hint string) string {
	switch state.Kind {
	case StateCancel:
		if !active {
			return ""
		}
		return t.line(state, t.strike(label))
	case StateSubmit:
		if !active {
			return ""
		}
		return t.line(state, t.dim(label))
	}

	if !active {
		return t.line(state, t.dim(symbolRadioInactive+" "+label))
	}
	body := t.paint(symbolRadioActive, &t.scheme.Selected) + " " + label
	if hint != "" {
		body += " " + t.dim("("+hint+")")
	}
	return t.line(state, body)
}

func (t *ClackTheme) FormatMultiSelectItem(state ThemeState, selected, active bool, label, hint string) string {
	switch state.Kind {
	case StateCancel:
		if !selected {
			return ""
		}
		return t.line(state, t.strike(label))
	case StateSubmit:
		if !selected {
			return ""
		}
		return t.line(state, t.dim(label))
	}

	var checkbox string
	switch {
	case selected:
		checkbox = t.paint(symbolCheckboxSelected, &t.scheme.Selected)
	case active:
		checkbox = t.paint(symbolCheckboxActive, &t.scheme.Active)
	default:
		checkbox = t.dim(symbolCheckboxInactive)
	}

	if !active {
		return t.line(state, checkbox+" "+t.dim(label))
	}
	body := checkbox + " " + label
	if hint != "" {
		body += " " + t.dim("("+hint+")")
	}
	return t.line(state, body)
}

func (t *ClackTheme) FormatConfirm(state ThemeState, value bool) string {
	answer := "No"
	if value {
		answer = "Yes"
	}
	switch state.Kind {
	case StateCancel:
		return t.line(state, t.strike(answer))
	case StateSubmit:
		return t.line(state, t.dim(answer))
	}

	on := t.paint(symbolRadioActive, &t.scheme.Selected)
	yes := on + " Yes"
	no := t.dim(symbolRadioInactive + " No")
	if !value {
		yes = t.dim(symbolRadioInactive + " Yes")
		no = on + " No"
	}
	return t.line(state, yes+" / "+no)
}

func (t *ClackTheme) PasswordMask() rune {
	return symbolPasswordMask
}
