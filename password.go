package clack

// Password prompts for a secret. Typed characters are only ever drawn as the
// mask rune, and the buffer is zeroed when the prompt ends.
type Password struct {
	prompt   string
	mask     rune
	input    *TextCursor
	validate Validator
	cfg      *config
}

// NewPassword creates a password prompt masked with the theme's mask rune.
//
// Example:
//
//	secret, err := clack.NewPassword("Provide a password").
//		Mask('▪').
//		Validate(func(s string) error {
//			if len(s) < 8 {
//				return errors.New("password must be at least 8 characters")
//			}
//			return nil
//		}).
//		Interact()
func NewPassword(prompt string, options ...Option) *Password {
	cfg := newConfig(options)
	return &Password{
		prompt: prompt,
		mask:   cfg.theme.PasswordMask(),
		input:  NewTextCursor(""),
		cfg:    cfg,
	}
}

// Mask sets the rune drawn in place of every character.
func (p *Password) Mask(mask rune) *Password {
	p.mask = mask
	return p
}

// Validate sets a validator run when Enter is pressed.
func (p *Password) Validate(v Validator) *Password {
	p.validate = v
	return p
}

// Interact runs the prompt and returns the password.
func (p *Password) Interact() (string, error) {
	defer p.input.Wipe()
	return withTerminal(p.cfg, func(t Terminal) (string, error) {
		return interact[string](t, p, p.cfg.logger)
	})
}

func (p *Password) EditBuffer() *TextCursor {
	return p.input
}

// AllowWordEditing is false so word jumps cannot reveal where spaces are.
func (p *Password) AllowWordEditing() bool {
	return false
}

func (p *Password) On(key Key) State[string] {
	if key.Code != KeyEnter {
		return Active[string]()
	}
	if p.input.IsEmpty() {
		return ErrorState[string](msgInputRequired)
	}

	value := p.input.String()
	if p.validate != nil {
		if err := p.validate(value); err != nil {
			return ErrorState[string](err.Error())
		}
	}
	return Submit(value)
}

func (p *Password) Render(state State[string]) string {
	st := state.ThemeState()
	theme := p.cfg.theme
	return theme.FormatHeader(st, p.prompt) +
		theme.FormatInput(st, p.input.Masked(p.mask)) +
		theme.FormatFooter(st, "")
}
