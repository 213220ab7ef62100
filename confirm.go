package clack

// Confirm prompts for a yes or no answer.
//
// Arrow keys flip the answer and Enter submits it. y and n answer directly.
type Confirm struct {
	prompt       string
	input        bool
	initialValue bool
	cfg          *config
}

// NewConfirm creates a confirm prompt answering No by default.
//
// Example:
//
//	ok, err := clack.NewConfirm("Install dependencies?").InitialValue(true).Interact()
func NewConfirm(prompt string, options ...Option) *Confirm {
	return &Confirm{
		prompt: prompt,
		cfg:    newConfig(options),
	}
}

// InitialValue sets the preselected answer.
func (c *Confirm) InitialValue(value bool) *Confirm {
	c.initialValue = value
	return c
}

// Interact runs the prompt and returns the answer.
func (c *Confirm) Interact() (bool, error) {
	c.input = c.initialValue
	return withTerminal(c.cfg, func(t Terminal) (bool, error) {
		return interact[bool](t, c, c.cfg.logger)
	})
}

func (c *Confirm) On(key Key) State[bool] {
	switch {
	case key.Code == KeyUp, key.Code == KeyDown, key.Code == KeyLeft, key.Code == KeyRight:
		c.input = !c.input
	case key.IsRune('y'), key.IsRune('Y'):
		c.input = true
		return Submit(true)
	case key.IsRune('n'), key.IsRune('N'):
		c.input = false
		return Submit(false)
	case key.Code == KeyEnter:
		return Submit(c.input)
	}
	return Active[bool]()
}

func (c *Confirm) Render(state State[bool]) string {
	st := state.ThemeState()
	theme := c.cfg.theme
	return theme.FormatHeader(st, c.prompt) +
		theme.FormatConfirm(st, c.input) +
		theme.FormatFooter(st, "")
}
