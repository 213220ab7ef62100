package clack

import (
	"fmt"
	"log/slog"
)

// Interaction is the contract every prompt implements.
//
// Render turns the current state into a complete frame; On computes the next
// state from one key. Neither method performs I/O: the driver owns the
// terminal, alternates rendering and key reads, and stops on Submit or Cancel.
//
// A prompt that owns an editable buffer also implements Editable, and may
// implement WordEditing to turn off word-level shortcuts.
type Interaction[T any] interface {
	Render(state State[T]) string
	On(key Key) State[T]
}

// Editable is implemented by prompts with a text buffer. The driver applies
// editing keys (characters, Backspace, Delete, arrows, Home, End) to the
// returned cursor before calling On. A nil cursor disables editing for that key.
type Editable interface {
	EditBuffer() *TextCursor
}

// WordEditing lets an Editable prompt refuse word navigation and deletion.
type WordEditing interface {
	AllowWordEditing() bool
}

// Interact runs a custom prompt until it submits or is cancelled.
//
// Example:
//
//	value, err := clack.Interact[int](counter)
//	if errors.Is(err, clack.ErrInterrupted) {
//		return
//	}
func Interact[T any](p Interaction[T], options ...Option) (T, error) {
	cfg := newConfig(options)
	return withTerminal(cfg, func(t Terminal) (T, error) {
		return interact(t, p, cfg.logger)
	})
}

// interact is the render/event loop. Escape and Ctrl+C cancel before the
// prompt sees the key.
func interact[T any](term Terminal, p Interaction[T], logger *slog.Logger) (T, error) {
	var zero T
	if !term.IsTerminal() {
		return zero, ErrNotTerminal
	}

	if err := term.HideCursor(); err != nil {
		return zero, fmt.Errorf("failed to hide cursor: %w", err)
	}
	defer func() {
		if err := term.ShowCursor(); err != nil {
			logger.Warn("failed to show cursor", "error", err)
		}
	}()

	r := newRenderer(term, logger)
	state := Active[T]()
	for {
		if err := r.draw(p.Render(state)); err != nil {
			return zero, fmt.Errorf("failed to render prompt: %w", err)
		}

		switch state.Kind() {
		case StateSubmit:
			return state.Value(), nil
		case StateCancel:
			return zero, ErrInterrupted
		}

		key, err := term.ReadKey()
		if err != nil {
			return zero, fmt.Errorf("failed to read key: %w", err)
		}

		switch key.Code {
		case KeyEscape, KeyInterrupt:
			state = Cancel[T]()
		default:
			editBuffer(p, key)
			state = p.On(key)
		}
	}
}

// editBuffer offers key to the prompt's text cursor, if it has one.
func editBuffer(p any, key Key) {
	editable, ok := p.(Editable)
	if !ok {
		return
	}
	cursor := editable.EditBuffer()
	if cursor == nil {
		return
	}
	words := true
	if w, ok := p.(WordEditing); ok {
		words = w.AllowWordEditing()
	}

	switch key.Code {
	case KeyRune:
		if key.Printable() {
			cursor.Insert(key.Rune)
		}
	case KeyBackspace:
		cursor.DeleteLeft()
	case KeyDelete:
		cursor.DeleteRight()
	case KeyLeft:
		cursor.MoveLeft()
	case KeyRight:
		cursor.MoveRight()
	case KeyUp:
		cursor.MoveUp()
	case KeyDown:
		cursor.MoveDown()
	case KeyHome:
		cursor.MoveHome()
	case KeyEnd:
		cursor.MoveEnd()
	case KeyWordLeft:
		if words {
			cursor.MoveLeftByWord()
		}
	case KeyWordRight:
		if words {
			cursor.MoveRightByWord()
		}
	case KeyDeleteWord:
		if words {
			cursor.DeleteWordToTheLeft()
		}
	}
}
