package clack

import (
	"unicode"
)

// KeyCode identifies a logical key.
type KeyCode int

// Key codes produced by the terminal's key decoder.
const (
	KeyUnknown KeyCode = iota
	KeyRune            // printable character, see Key.Rune
	KeyEnter
	KeyEscape
	KeyInterrupt // Ctrl+C
	KeyTab
	KeyBackTab // Shift+Tab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyWordLeft  // Ctrl+Left, Alt+Left, Alt+b
	KeyWordRight // Ctrl+Right, Alt+Right, Alt+f
	KeyDeleteWord
)

// Key is one logical keypress. It is the only event a prompt receives.
type Key struct {
	Code KeyCode
	Rune rune // set when Code is KeyRune
}

// RuneKey returns the key for a printable character.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// IsRune reports whether k is the printable character r.
func (k Key) IsRune(r rune) bool {
	return k.Code == KeyRune && k.Rune == r
}

// Printable reports whether k carries a character that may be inserted into a buffer.
func (k Key) Printable() bool {
	return k.Code == KeyRune && !unicode.IsControl(k.Rune)
}

// keyBindings maps single control runes to keys.
var keyBindings = map[rune]KeyCode{
	'\r':   KeyEnter,
	'\n':   KeyEnter,
	'\t':   KeyTab,
	'\x03': KeyInterrupt,  // Ctrl+C
	'\x01': KeyHome,       // Ctrl+A
	'\x05': KeyEnd,        // Ctrl+E
	'\x17': KeyDeleteWord, // Ctrl+W
	'\x7f': KeyBackspace,
	'\b':   KeyBackspace,
}

// sequenceBindings maps escape sequences (without the leading ESC) to keys.
var sequenceBindings = map[string]KeyCode{
	"[A":     KeyUp,
	"[B":     KeyDown,
	"[C":     KeyRight,
	"[D":     KeyLeft,
	"OA":     KeyUp,
	"OB":     KeyDown,
	"OC":     KeyRight,
	"OD":     KeyLeft,
	"[H":     KeyHome,
	"[F":     KeyEnd,
	"OH":     KeyHome,
	"OF":     KeyEnd,
	"[1~":    KeyHome,
	"[7~":    KeyHome,
	"[4~":    KeyEnd,
	"[8~":    KeyEnd,
	"[3~":    KeyDelete,
	"[Z":     KeyBackTab,
	"[1;5C":  KeyWordRight, // Ctrl+Right
	"[1;5D":  KeyWordLeft,  // Ctrl+Left
	"[1;3C":  KeyWordRight, // Alt+Right
	"[1;3D":  KeyWordLeft,  // Alt+Left
	"b":      KeyWordLeft,  // Alt+b
	"f":      KeyWordRight, // Alt+f
	"\x7f":   KeyDeleteWord,
	"[3;5~":  KeyDeleteWord,
	"[1;2A":  KeyUp,
	"[1;2B":  KeyDown,
	"[1;2C":  KeyRight,
	"[1;2D":  KeyLeft,
	"[1;5A":  KeyUp,
	"[1;5B":  KeyDown,
	"[1;3A":  KeyUp,
	"[1;3B":  KeyDown,
	"[1;9C":  KeyWordRight, // Option+Right on some macOS terminals
	"[1;9D":  KeyWordLeft,
	"[1;10C": KeyWordRight,
	"[1;10D": KeyWordLeft,
}

// runeSource is the input a key decoder reads from. Buffered reports whether
// more input is already available without blocking, which separates a lone
// Escape press from the first byte of an escape sequence.
type runeSource interface {
	ReadRune() (rune, error)
	Buffered() bool
}

// maxSequenceLength bounds escape sequence reads.
const maxSequenceLength = 10

// decodeKey reads one logical key from src.
func decodeKey(src runeSource) (Key, error) {
	r, err := src.ReadRune()
	if err != nil {
		return Key{}, err
	}
	if r != '\x1b' {
		if code, ok := keyBindings[r]; ok {
			return Key{Code: code}, nil
		}
		if unicode.IsControl(r) {
			return Key{Code: KeyUnknown}, nil
		}
		return RuneKey(r), nil
	}
	if !src.Buffered() {
		return Key{Code: KeyEscape}, nil
	}
	seq, err := readEscapeSequence(src)
	if err != nil {
		return Key{}, err
	}
	if code, ok := sequenceBindings[seq]; ok {
		return Key{Code: code}, nil
	}
	return Key{Code: KeyUnknown}, nil
}

// readEscapeSequence reads the rest of a CSI/SS3 sequence or a single Alt
// modified rune after ESC.
func readEscapeSequence(src runeSource) (string, error) {
	first, err := src.ReadRune()
	if err != nil {
		return "", err
	}
	if first != '[' && first != 'O' {
		return string(first), nil
	}
	seq := make([]rune, 1, maxSequenceLength)
	seq[0] = first
	for len(seq) < maxSequenceLength && src.Buffered() {
		r, err := src.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)
		if first == 'O' || isFinalByte(r) {
			break
		}
	}
	return string(seq), nil
}

// isFinalByte reports whether r terminates a CSI sequence.
func isFinalByte(r rune) bool {
	return r >= 0x40 && r <= 0x7e
}
