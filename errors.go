package clack

import "errors"

// Common errors
var (
	// ErrInterrupted is returned when the user presses Escape or Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
	// ErrNotTerminal is returned before any input is read when the prompt
	// output is not an interactive terminal.
	ErrNotTerminal = errors.New("not an interactive terminal")
	// ErrNoItems is returned by Select and MultiSelect built without items.
	ErrNoItems = errors.New("no items added to the list")
)

// Messages shown inline for one frame. They never leave the prompt.
const (
	msgInputRequired = "Input required"
	msgInvalidFormat = "Invalid value format"
	msgNoItems       = "No items"
)
