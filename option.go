package clack

import (
	"fmt"
	"log/slog"
)

// config holds the settings shared by every prompt type.
type config struct {
	theme    Theme
	terminal Terminal
	logger   *slog.Logger
}

// Option represents a configuration option for a prompt
type Option func(*config)

// WithTheme sets the theme that turns prompt state into printable text.
func WithTheme(theme Theme) Option {
	return func(c *config) {
		c.theme = theme
	}
}

// WithColorScheme uses the default theme painted with the given colors.
//
// Example:
//
//	scheme, err := clack.LoadColorScheme("colors.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	ok, err := clack.NewConfirm("Deploy?", clack.WithColorScheme(scheme)).Interact()
func WithColorScheme(scheme *ColorScheme) Option {
	return func(c *config) {
		c.theme = NewClackTheme(scheme)
	}
}

// WithTerminal makes the prompt run on the given terminal instead of opening
// the controlling tty. The caller keeps ownership of it.
func WithTerminal(terminal Terminal) Option {
	return func(c *config) {
		c.terminal = terminal
	}
}

// WithLogger sets the logger for redraw tracing and cleanup warnings.
// Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(options []Option) *config {
	c := &config{}
	for _, option := range options {
		option(c)
	}
	if c.theme == nil {
		c.theme = NewClackTheme(ThemeDefault)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// withTerminal runs fn on the configured terminal, opening and closing the
// controlling tty when none was supplied.
func withTerminal[T any](c *config, fn func(Terminal) (T, error)) (T, error) {
	if c.terminal != nil {
		return fn(c.terminal)
	}

	var zero T
	t, err := newRealTerminal()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrNotTerminal, err)
	}
	defer func() {
		if err := t.Close(); err != nil {
			c.logger.Warn("failed to close terminal", "error", err)
		}
	}()
	return fn(t)
}
