package clack

// Validator checks a candidate value. A non-nil error keeps the prompt open
// and its message is displayed under the input until the next key.
//
// Example:
//
//	name := clack.NewInput("Project name").Validate(func(s string) error {
//		if strings.ContainsRune(s, ' ') {
//			return errors.New("no spaces please")
//		}
//		return nil
//	})
type Validator func(input string) error
