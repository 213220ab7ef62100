package clack

// StateKind tags the variant held by a State.
type StateKind int

// State kinds. Active and Error are transient and live for one frame;
// Submit and Cancel end the interaction.
const (
	StateActive StateKind = iota
	StateSubmit
	StateCancel
	StateError
)

func (k StateKind) String() string {
	switch k {
	case StateActive:
		return "active"
	case StateSubmit:
		return "submit"
	case StateCancel:
		return "cancel"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the outcome of handling one key: keep going, submit a value,
// cancel, or show an error message for the next frame.
type State[T any] struct {
	kind    StateKind
	value   T
	message string
}

// Active returns the state of a prompt waiting for more input.
func Active[T any]() State[T] {
	return State[T]{kind: StateActive}
}

// Submit returns the terminal state carrying the prompt's result.
func Submit[T any](value T) State[T] {
	return State[T]{kind: StateSubmit, value: value}
}

// Cancel returns the terminal state of an aborted prompt.
func Cancel[T any]() State[T] {
	return State[T]{kind: StateCancel}
}

// ErrorState returns a state that displays message for one frame.
func ErrorState[T any](message string) State[T] {
	return State[T]{kind: StateError, message: message}
}

// Kind returns the variant tag.
func (s State[T]) Kind() StateKind {
	return s.kind
}

// Value returns the submitted value. It is the zero value unless Kind is StateSubmit.
func (s State[T]) Value() T {
	return s.value
}

// Message returns the error message of a StateError.
func (s State[T]) Message() string {
	return s.message
}

// Done reports whether the state ends the interaction.
func (s State[T]) Done() bool {
	return s.kind == StateSubmit || s.kind == StateCancel
}

// ThemeState strips the value so the state can be handed to a Theme.
func (s State[T]) ThemeState() ThemeState {
	return ThemeState{Kind: s.kind, Message: s.message}
}
