package clack

import (
	"fmt"
	"slices"
	"strings"
)

type checkbox[T any] struct {
	Choice[T]
	selected bool
}

// MultiSelect prompts for any number of values out of a list.
//
// Space toggles the item under the cursor and Enter submits every selected
// item, including items hidden by the filter. h, j, k and l move the cursor
// while filter mode is off.
//
// Example:
//
//	tools, err := clack.NewMultiSelect[string]("Select additional tools").
//		Item("eslint", "ESLint", "recommended").
//		Item("prettier", "Prettier", "").
//		Item("gh-action", "GitHub Action", "").
//		InitialValues("prettier").
//		Required(false).
//		Interact()
type MultiSelect[T comparable] struct {
	prompt        string
	items         []checkbox[T]
	labels        []string
	cursor        int // index into filter.visible
	required      bool
	initialValues []T
	filter        filteredView
	window        listWindow
	cfg           *config
}

// NewMultiSelect creates an empty multiple choice prompt that requires at
// least one selected item.
func NewMultiSelect[T comparable](prompt string, options ...Option) *MultiSelect[T] {
	return &MultiSelect[T]{
		prompt:   prompt,
		required: true,
		cfg:      newConfig(options),
	}
}

// Item appends an item to the list.
func (m *MultiSelect[T]) Item(value T, label, hint string) *MultiSelect[T] {
	m.items = append(m.items, checkbox[T]{Choice: Choice[T]{Value: value, Label: label, Hint: hint}})
	return m
}

// Items appends several items to the list.
func (m *MultiSelect[T]) Items(choices ...Choice[T]) *MultiSelect[T] {
	for _, c := range choices {
		m.items = append(m.items, checkbox[T]{Choice: c})
	}
	return m
}

// InitialValues preselects every item holding one of values.
func (m *MultiSelect[T]) InitialValues(values ...T) *MultiSelect[T] {
	m.initialValues = values
	return m
}

// Required sets whether submitting without a selection is rejected. Default: true.
func (m *MultiSelect[T]) Required(required bool) *MultiSelect[T] {
	m.required = required
	return m
}

// FilterMode lets the user narrow the list by typing.
func (m *MultiSelect[T]) FilterMode() *MultiSelect[T] {
	m.filter.enable()
	return m
}

// Matcher replaces the ranking used in filter mode.
func (m *MultiSelect[T]) Matcher(matcher Matcher) *MultiSelect[T] {
	m.filter.matcher = matcher
	return m
}

// WindowSize limits how many items are shown at once. By default the window
// is as tall as the terminal allows, and a larger size is shrunk to fit.
func (m *MultiSelect[T]) WindowSize(size int) *MultiSelect[T] {
	m.window.size = size
	return m
}

// Interact runs the prompt and returns the selected values in list order.
// It returns ErrNoItems without touching the terminal when the list is empty.
func (m *MultiSelect[T]) Interact() ([]T, error) {
	if len(m.items) == 0 {
		return nil, ErrNoItems
	}

	return withTerminal(m.cfg, func(t Terminal) ([]T, error) {
		m.window.fit(terminalHeight(t), m.filter.enabled)
		m.labels = m.labels[:0]
		for i := range m.items {
			m.labels = append(m.labels, m.items[i].Label)
			if slices.Contains(m.initialValues, m.items[i].Value) {
				m.items[i].selected = true
			}
		}
		m.filter.reset(len(m.items))
		m.cursor = 0
		m.window.follow(m.cursor)

		return interact[[]T](t, m, m.cfg.logger)
	})
}

// EditBuffer exposes the filter query, or nil when filtering is off.
func (m *MultiSelect[T]) EditBuffer() *TextCursor {
	return m.filter.buffer()
}

func (m *MultiSelect[T]) On(key Key) State[[]T] {
	if state, ok := onFilter[[]T](&m.filter, key, m.labels); ok {
		if m.cursor >= len(m.filter.visible) {
			m.cursor = 0
		}
		m.window.follow(m.cursor)
		return state
	}

	visible := m.filter.visible
	switch {
	case key.Code == KeyUp, key.Code == KeyLeft, key.IsRune('k'), key.IsRune('h'):
		m.cursor = moveCursor(m.cursor, -1, len(visible))
	case key.Code == KeyDown, key.Code == KeyRight, key.IsRune('j'), key.IsRune('l'):
		m.cursor = moveCursor(m.cursor, 1, len(visible))
	case key.IsRune(' '):
		if len(visible) > 0 {
			item := &m.items[visible[m.cursor]]
			item.selected = !item.selected
		}
	case key.Code == KeyEnter:
		selected := m.selectedValues()
		if len(selected) == 0 && m.required {
			return ErrorState[[]T](msgInputRequired)
		}
		return Submit(selected)
	}
	m.window.follow(m.cursor)
	return Active[[]T]()
}

// selectedValues collects the selected values of the whole list, filtered or not.
func (m *MultiSelect[T]) selectedValues() []T {
	var values []T
	for _, item := range m.items {
		if item.selected {
			values = append(values, item.Value)
		}
	}
	return values
}

// hiddenSelections counts selected items the filter currently hides.
func (m *MultiSelect[T]) hiddenSelections() int {
	hidden := len(m.selectedValues())
	for _, i := range m.filter.visible {
		if m.items[i].selected {
			hidden--
		}
	}
	return hidden
}

func (m *MultiSelect[T]) Render(state State[[]T]) string {
	st := state.ThemeState()
	theme := m.cfg.theme

	var b strings.Builder
	b.WriteString(theme.FormatHeader(st, m.prompt))

	if state.Done() {
		for _, item := range m.items {
			b.WriteString(theme.FormatMultiSelectItem(st, item.selected, false, item.Label, item.Hint))
		}
		b.WriteString(theme.FormatFooter(st, ""))
		return b.String()
	}

	if input := m.filter.buffer(); input != nil {
		b.WriteString(theme.FormatInput(st, input))
	}
	lo, hi := m.window.bounds(len(m.filter.visible))
	for i := lo; i < hi; i++ {
		item := m.items[m.filter.visible[i]]
		b.WriteString(theme.FormatMultiSelectItem(st, item.selected, i == m.cursor, item.Label, item.Hint))
	}

	var hint string
	if n := m.hiddenSelections(); n > 0 {
		hint = fmt.Sprintf("%d selected item%s not displayed", n, plural(n))
	}
	b.WriteString(theme.FormatFooter(st, hint))
	return b.String()
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
