package clack

import (
	"slices"
	"unicode"
)

// TextCursor is an editable rune buffer with an insertion point.
//
// The cursor is a rune offset in [0, Len()]. Every operation keeps it in that
// range, and operations that cannot apply (deleting at a boundary, moving past
// the first or last line) are silent no-ops. TextCursor performs no I/O; the
// interaction driver feeds it keys and the theme renders it through Split.
//
// Newlines are only accepted when multiline editing is enabled with
// SetMultiline. Line-oriented operations (MoveUp, MoveDown, MoveHome, MoveEnd)
// work on logical lines separated by '\n'.
type TextCursor struct {
	value     []rune
	cursor    int
	multiline bool
}

// NewTextCursor returns a cursor holding text with the insertion point at the end.
func NewTextCursor(text string) *TextCursor {
	value := []rune(text)
	return &TextCursor{value: value, cursor: len(value)}
}

// SetMultiline enables or disables insertion of newline characters.
func (c *TextCursor) SetMultiline(multiline bool) {
	c.multiline = multiline
}

// Multiline reports whether newlines may be inserted.
func (c *TextCursor) Multiline() bool {
	return c.multiline
}

// String returns the buffer content.
func (c *TextCursor) String() string {
	return string(c.value)
}

// Len returns the number of runes in the buffer.
func (c *TextCursor) Len() int {
	return len(c.value)
}

// IsEmpty reports whether the buffer holds no runes.
func (c *TextCursor) IsEmpty() bool {
	return len(c.value) == 0
}

// Position returns the cursor offset in runes.
func (c *TextCursor) Position() int {
	return c.cursor
}

// Current returns the rune under the cursor. ok is false at the end of the buffer.
func (c *TextCursor) Current() (r rune, ok bool) {
	if c.cursor >= len(c.value) {
		return 0, false
	}
	return c.value[c.cursor], true
}

// Insert inserts r at the cursor and advances past it.
func (c *TextCursor) Insert(r rune) {
	if r == '\n' && !c.multiline {
		return
	}
	c.reserve()
	c.value = slices.Insert(c.value, c.cursor, r)
	c.cursor++
}

// Extend appends text to the end of the buffer without moving the cursor.
func (c *TextCursor) Extend(text string) {
	for _, r := range text {
		if r == '\n' && !c.multiline {
			continue
		}
		c.reserve()
		c.value = append(c.value, r)
	}
}

// reserve makes room for one more rune. A full buffer is copied to a larger
// array and the old one is zeroed, so Wipe leaves no stale copy behind.
func (c *TextCursor) reserve() {
	if len(c.value) < cap(c.value) {
		return
	}
	value := make([]rune, len(c.value), 2*cap(c.value)+16)
	copy(value, c.value)
	clear(c.value)
	c.value = value
}

// DeleteLeft removes the rune before the cursor (backspace).
func (c *TextCursor) DeleteLeft() {
	if len(c.value) == 0 || c.cursor == 0 {
		return
	}
	c.value = slices.Delete(c.value, c.cursor-1, c.cursor)
	c.cursor--
}

// DeleteRight removes the rune under the cursor (delete).
func (c *TextCursor) DeleteRight() {
	if len(c.value) == 0 || c.cursor >= len(c.value) {
		return
	}
	c.value = slices.Delete(c.value, c.cursor, c.cursor+1)
}

// DeleteWordToTheLeft removes everything between the start of the current
// (or previous) word and the cursor.
func (c *TextCursor) DeleteWordToTheLeft() {
	if c.cursor == 0 {
		return
	}
	jumps := wordJumpIndices(c.value)
	i, _ := slices.BinarySearch(jumps, c.cursor)
	start := jumps[max(i-1, 0)]
	c.value = slices.Delete(c.value, start, c.cursor)
	c.cursor = start
}

// Clear empties the buffer.
func (c *TextCursor) Clear() {
	c.value = c.value[:0]
	c.cursor = 0
}

// Wipe overwrites every rune with zero before emptying the buffer.
func (c *TextCursor) Wipe() {
	clear(c.value[:cap(c.value)])
	c.Clear()
}

// MoveLeft moves the cursor one rune to the left.
func (c *TextCursor) MoveLeft() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// MoveRight moves the cursor one rune to the right.
func (c *TextCursor) MoveRight() {
	if c.cursor < len(c.value) {
		c.cursor++
	}
}

// MoveLeftByWord moves the cursor to the start of the current word, or to the
// start of the previous word when it already sits on a word start.
func (c *TextCursor) MoveLeftByWord() {
	jumps := wordJumpIndices(c.value)
	i, _ := slices.BinarySearch(jumps, c.cursor)
	c.cursor = jumps[max(i-1, 0)]
}

// MoveRightByWord moves the cursor to the start of the next word, or to the
// end of the buffer after the last word.
func (c *TextCursor) MoveRightByWord() {
	jumps := wordJumpIndices(c.value)
	i, found := slices.BinarySearch(jumps, c.cursor)
	if found {
		i++
	}
	c.cursor = jumps[min(i, len(jumps)-1)]
}

// MoveHome moves the cursor to the start of the current line.
func (c *TextCursor) MoveHome() {
	jumps := lineJumpIndices(c.value)
	c.cursor = jumps[currentLine(jumps, c.cursor)]
}

// MoveEnd moves the cursor to the end of the current line.
func (c *TextCursor) MoveEnd() {
	jumps := lineJumpIndices(c.value)
	c.cursor = jumps[currentLine(jumps, c.cursor)+1] - 1
}

// MoveUp moves the cursor to the same column of the previous line, clamped to
// that line's length.
func (c *TextCursor) MoveUp() {
	jumps := lineJumpIndices(c.value)
	line := currentLine(jumps, c.cursor)
	if line == 0 {
		return
	}
	c.cursor = columnOnLine(jumps, line-1, c.cursor-jumps[line])
}

// MoveDown moves the cursor to the same column of the next line, clamped to
// that line's length.
func (c *TextCursor) MoveDown() {
	jumps := lineJumpIndices(c.value)
	line := currentLine(jumps, c.cursor)
	if line >= len(jumps)-2 {
		return
	}
	c.cursor = columnOnLine(jumps, line+1, c.cursor-jumps[line])
}

// Split returns the text before the cursor, the rune under the cursor and the
// text after it, for caret rendering. The middle part is a space when the
// cursor is at the end of the buffer or on a newline.
func (c *TextCursor) Split() (left, under, right string) {
	left = string(c.value[:c.cursor])
	under = " "
	if c.cursor < len(c.value) {
		if r := c.value[c.cursor]; r == '\n' {
			right = "\n"
		} else {
			under = string(r)
		}
		right += string(c.value[c.cursor+1:])
	}
	return left, under, right
}

// Masked returns a copy of the cursor with every rune replaced by mask.
func (c *TextCursor) Masked(mask rune) *TextCursor {
	masked := make([]rune, len(c.value))
	for i := range masked {
		masked[i] = mask
	}
	return &TextCursor{value: masked, cursor: c.cursor, multiline: c.multiline}
}

// wordJumpIndices returns the ascending offsets the cursor may jump to by
// word: the buffer start, every rune that follows whitespace, and the buffer
// length as sentinel.
func wordJumpIndices(value []rune) []int {
	indices := []int{0}
	inWord := false
	for i, r := range value {
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord && i > 0 {
			indices = append(indices, i)
		}
		inWord = true
	}
	if len(value) > 0 {
		indices = append(indices, len(value))
	}
	return indices
}

// lineJumpIndices returns the start offset of every line followed by a
// sentinel of len(value)+1, so line k spans [jumps[k], jumps[k+1]-1).
func lineJumpIndices(value []rune) []int {
	indices := []int{0}
	for i, r := range value {
		if r == '\n' {
			indices = append(indices, i+1)
		}
	}
	return append(indices, len(value)+1)
}

func currentLine(jumps []int, cursor int) int {
	i, found := slices.BinarySearch(jumps, cursor)
	if found {
		return i
	}
	return i - 1
}

func columnOnLine(jumps []int, line, column int) int {
	length := jumps[line+1] - jumps[line] - 1
	return jumps[line] + min(column, length)
}
