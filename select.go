package clack

import (
	"slices"
	"strings"
)

// Choice is one item of a Select or MultiSelect.
type Choice[T any] struct {
	Value T
	Label string
	Hint  string // Optional text shown next to the active item
}

func choiceLabels[T any](choices []Choice[T]) []string {
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}
	return labels
}

// Select prompts for one value out of a list.
//
// Example:
//
//	kind, err := clack.NewSelect[string]("Pick a project type").
//		Item("ts", "TypeScript", "").
//		Item("js", "JavaScript", "").
//		Item("coffee", "CoffeeScript", "oh no").
//		InitialValue("js").
//		FilterMode().
//		Interact()
type Select[T comparable] struct {
	prompt       string
	items        []Choice[T]
	labels       []string
	cursor       int // index into filter.visible
	initialValue T
	hasInitial   bool
	filter       filteredView
	window       listWindow
	cfg          *config
}

// NewSelect creates an empty single choice prompt.
func NewSelect[T comparable](prompt string, options ...Option) *Select[T] {
	return &Select[T]{
		prompt: prompt,
		cfg:    newConfig(options),
	}
}

// Item appends an item to the list.
func (s *Select[T]) Item(value T, label, hint string) *Select[T] {
	s.items = append(s.items, Choice[T]{Value: value, Label: label, Hint: hint})
	return s
}

// Items appends several items to the list.
func (s *Select[T]) Items(choices ...Choice[T]) *Select[T] {
	s.items = append(s.items, choices...)
	return s
}

// InitialValue places the cursor on the first item holding value.
func (s *Select[T]) InitialValue(value T) *Select[T] {
	s.initialValue = value
	s.hasInitial = true
	return s
}

// FilterMode lets the user narrow the list by typing.
func (s *Select[T]) FilterMode() *Select[T] {
	s.filter.enable()
	return s
}

// Matcher replaces the ranking used in filter mode.
func (s *Select[T]) Matcher(m Matcher) *Select[T] {
	s.filter.matcher = m
	return s
}

// WindowSize limits how many items are shown at once. By default the window
// is as tall as the terminal allows, and a larger size is shrunk to fit.
func (s *Select[T]) WindowSize(size int) *Select[T] {
	s.window.size = size
	return s
}

// Interact runs the prompt and returns the value of the chosen item.
// It returns ErrNoItems without touching the terminal when the list is empty.
func (s *Select[T]) Interact() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrNoItems
	}

	return withTerminal(s.cfg, func(t Terminal) (T, error) {
		s.window.fit(terminalHeight(t), s.filter.enabled)
		s.labels = choiceLabels(s.items)
		s.filter.reset(len(s.items))

		s.cursor = 0
		if s.hasInitial {
			if i := slices.IndexFunc(s.items, func(c Choice[T]) bool { return c.Value == s.initialValue }); i >= 0 {
				s.cursor = i
			}
		}
		s.window.follow(s.cursor)

		return interact[T](t, s, s.cfg.logger)
	})
}

// EditBuffer exposes the filter query, or nil when filtering is off.
func (s *Select[T]) EditBuffer() *TextCursor {
	return s.filter.buffer()
}

func (s *Select[T]) On(key Key) State[T] {
	if state, ok := onFilter[T](&s.filter, key, s.labels); ok {
		if s.cursor >= len(s.filter.visible) {
			s.cursor = 0
		}
		s.window.follow(s.cursor)
		return state
	}

	visible := s.filter.visible
	switch key.Code {
	case KeyUp, KeyLeft:
		s.cursor = moveCursor(s.cursor, -1, len(visible))
	case KeyDown, KeyRight:
		s.cursor = moveCursor(s.cursor, 1, len(visible))
	case KeyEnter:
		if len(visible) > 0 {
			return Submit(s.items[visible[s.cursor]].Value)
		}
	}
	s.window.follow(s.cursor)
	return Active[T]()
}

func (s *Select[T]) Render(state State[T]) string {
	st := state.ThemeState()
	theme := s.cfg.theme

	var b strings.Builder
	b.WriteString(theme.FormatHeader(st, s.prompt))
	if input := s.filter.buffer(); input != nil && !state.Done() {
		b.WriteString(theme.FormatInput(st, input))
	}

	lo, hi := s.window.bounds(len(s.filter.visible))
	for i := lo; i < hi; i++ {
		item := s.items[s.filter.visible[i]]
		b.WriteString(theme.FormatSelectItem(st, i == s.cursor, item.Label, item.Hint))
	}

	b.WriteString(theme.FormatFooter(st, ""))
	return b.String()
}
