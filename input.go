package clack

// Footer hints of a multiline Input
const (
	hintMultilineEdit = "[Tab] => View"
	hintMultilineView = "[Tab] => Edit | Enter => Submit"
)

// Input prompts for a line of text, or several lines in multiline mode.
//
// Example:
//
//	dir, err := clack.NewInput("Where should we create your project?").
//		Placeholder("./sparkling-solid").
//		Validate(func(s string) error {
//			if !strings.HasPrefix(s, "./") {
//				return errors.New("please enter a relative path")
//			}
//			return nil
//		}).
//		Interact()
type Input struct {
	prompt                string
	input                 *TextCursor
	placeholder           *TextCursor
	defaultValue          string
	hasDefault            bool
	required              bool
	multiline             bool
	editing               bool
	validate              Validator
	validateInteractively Validator
	cfg                   *config
}

// NewInput creates a required text prompt.
func NewInput(prompt string, options ...Option) *Input {
	return &Input{
		prompt:      prompt,
		input:       NewTextCursor(""),
		placeholder: NewTextCursor(""),
		required:    true,
		cfg:         newConfig(options),
	}
}

// NewText creates a text prompt that accepts an empty answer.
func NewText(prompt string, options ...Option) *Input {
	return NewInput(prompt, options...).Required(false)
}

// Placeholder sets the hint shown while the input is empty.
func (i *Input) Placeholder(placeholder string) *Input {
	i.placeholder.Clear()
	i.placeholder.Extend(placeholder)
	return i
}

// Default sets the value submitted when Enter is pressed on an empty input.
// Without an explicit placeholder, "<value> (default)" is shown as hint.
func (i *Input) Default(value string) *Input {
	i.defaultValue = value
	i.hasDefault = true
	return i
}

// Required sets whether an empty answer is rejected. Default: true.
// A default value always satisfies a required input.
func (i *Input) Required(required bool) *Input {
	i.required = required
	return i
}

// Multiline enables multiline input.
//
// The prompt starts in edit mode, where Enter inserts a line break. Tab
// switches to view mode, where Enter submits. Typing a character in view mode
// switches back to edit mode.
func (i *Input) Multiline() *Input {
	i.multiline = true
	i.editing = true
	i.input.SetMultiline(true)
	return i
}

// Validate sets a validator run when Enter is pressed.
func (i *Input) Validate(v Validator) *Input {
	i.validate = v
	return i
}

// ValidateInteractively sets a validator run after every key.
func (i *Input) ValidateInteractively(v Validator) *Input {
	i.validateInteractively = v
	return i
}

// Interact runs the prompt and returns the submitted text.
func (i *Input) Interact() (string, error) {
	return InteractAs(i, ParseString)
}

// InteractAs runs the prompt and converts the submitted text with parse.
// Text that parse rejects keeps the prompt open with "Invalid value format".
//
// Example:
//
//	port, err := clack.InteractAs(clack.NewInput("Port").Default("8080"), clack.ParseInt)
func InteractAs[T any](i *Input, parse ParseFunc[T]) (T, error) {
	cfg := i.cfg
	if i.placeholder.IsEmpty() && i.hasDefault {
		i.placeholder.Extend(i.defaultValue + " (default)")
	}

	p := &inputInteraction[T]{Input: i, parse: parse}
	return withTerminal(cfg, func(t Terminal) (T, error) {
		return interact[T](t, p, cfg.logger)
	})
}

// inputInteraction binds an Input to the type it is parsed into.
type inputInteraction[T any] struct {
	*Input
	parse ParseFunc[T]
}

// EditBuffer hands the buffer to the driver unless a multiline input is in
// view mode.
func (p *inputInteraction[T]) EditBuffer() *TextCursor {
	if p.multiline && !p.editing {
		return nil
	}
	return p.input
}

func (p *inputInteraction[T]) On(key Key) State[T] {
	if p.multiline {
		switch {
		case key.Code == KeyTab:
			p.editing = !p.editing
			return Active[T]()
		case key.Code == KeyEnter && p.editing:
			p.input.Insert('\n')
			return Active[T]()
		case !p.editing && key.Printable():
			p.editing = true
			p.input.Insert(key.Rune)
		case !p.editing && key.Code != KeyEnter:
			return Active[T]()
		}
	}

	if key.Code == KeyEnter && p.input.IsEmpty() {
		if p.hasDefault {
			p.input.Extend(p.defaultValue)
		} else if p.required {
			return ErrorState[T](msgInputRequired)
		}
	}

	// Runs after the default is filled in so a default is validated too.
	value := p.input.String()
	if p.validateInteractively != nil {
		if err := p.validateInteractively(value); err != nil {
			return ErrorState[T](err.Error())
		}
		if _, err := p.parse(value); err != nil {
			return ErrorState[T](msgInvalidFormat)
		}
	}

	if key.Code != KeyEnter {
		return Active[T]()
	}

	if p.validate != nil {
		if err := p.validate(value); err != nil {
			return ErrorState[T](err.Error())
		}
	}
	result, err := p.parse(value)
	if err != nil {
		return ErrorState[T](msgInvalidFormat)
	}
	return Submit(result)
}

func (p *inputInteraction[T]) Render(state State[T]) string {
	st := state.ThemeState()

	var body string
	if p.input.IsEmpty() {
		body = p.cfg.theme.FormatPlaceholder(st, p.placeholder)
	} else {
		body = p.cfg.theme.FormatInput(st, p.input)
	}

	var hint string
	if p.multiline {
		hint = hintMultilineView
		if p.editing {
			hint = hintMultilineEdit
		}
	}

	return p.cfg.theme.FormatHeader(st, p.prompt) + body + p.cfg.theme.FormatFooter(st, hint)
}
