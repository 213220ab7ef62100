package clack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextCursorInsertAndDelete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		initial  string
		moves    func(c *TextCursor)
		expected string
		cursor   int
	}{
		{
			name:     "insert at end",
			initial:  "hell",
			moves:    func(c *TextCursor) { c.Insert('o') },
			expected: "hello",
			cursor:   5,
		},
		{
			name:    "insert in the middle",
			initial: "hllo",
			moves: func(c *TextCursor) {
				c.MoveHome()
				c.MoveRight()
				c.Insert('e')
			},
			expected: "hello",
			cursor:   2,
		},
		{
			name:     "delete left",
			initial:  "hello",
			moves:    func(c *TextCursor) { c.DeleteLeft() },
			expected: "hell",
			cursor:   4,
		},
		{
			name:     "delete left at start is a no-op",
			initial:  "hello",
			moves:    func(c *TextCursor) { c.MoveHome(); c.DeleteLeft() },
			expected: "hello",
			cursor:   0,
		},
		{
			name:     "delete right",
			initial:  "hello",
			moves:    func(c *TextCursor) { c.MoveHome(); c.DeleteRight() },
			expected: "ello",
			cursor:   0,
		},
		{
			name:     "delete right at end is a no-op",
			initial:  "hello",
			moves:    func(c *TextCursor) { c.DeleteRight() },
			expected: "hello",
			cursor:   5,
		},
		{
			name:     "delete on empty buffer",
			initial:  "",
			moves:    func(c *TextCursor) { c.DeleteLeft(); c.DeleteRight() },
			expected: "",
			cursor:   0,
		},
		{
			name:     "newline rejected on a single line buffer",
			initial:  "ab",
			moves:    func(c *TextCursor) { c.Insert('\n') },
			expected: "ab",
			cursor:   2,
		},
		{
			name:     "unicode",
			initial:  "こんにちは",
			moves:    func(c *TextCursor) { c.MoveLeft(); c.DeleteLeft() },
			expected: "こんには",
			cursor:   3,
		},
		{
			name:     "delete word to the left",
			initial:  "git commit --amend",
			moves:    func(c *TextCursor) { c.DeleteWordToTheLeft() },
			expected: "git commit ",
			cursor:   11,
		},
		{
			name:     "delete word from inside a word",
			initial:  "git commit",
			moves:    func(c *TextCursor) { c.MoveLeft(); c.MoveLeft(); c.DeleteWordToTheLeft() },
			expected: "git it",
			cursor:   4,
		},
		{
			name:     "extend keeps the cursor",
			initial:  "",
			moves:    func(c *TextCursor) { c.Extend("abc") },
			expected: "abc",
			cursor:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewTextCursor(tt.initial)
			tt.moves(c)
			assert.Equal(t, tt.expected, c.String(), "buffer should match expected")
			assert.Equal(t, tt.cursor, c.Position(), "cursor should match expected")
		})
	}
}

func TestTextCursorInsertThenDeleteRestores(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "a", "hello world", "multi\nline", "日本語"} {
		for pos := 0; pos <= len([]rune(text)); pos++ {
			c := NewTextCursor(text)
			c.SetMultiline(true)
			for c.Position() > 0 {
				c.MoveLeft()
			}
			for range pos {
				c.MoveRight()
			}
			require.Equal(t, pos, c.Position())

			c.Insert('x')
			c.DeleteLeft()
			assert.Equal(t, text, c.String(), "insert+delete should restore %q at %d", text, pos)
			assert.Equal(t, pos, c.Position(), "insert+delete should restore cursor of %q at %d", text, pos)
		}
	}
}

func TestTextCursorStaysInBounds(t *testing.T) {
	t.Parallel()

	c := NewTextCursor("")
	c.SetMultiline(true)
	ops := []func(){
		func() { c.Insert('a') },
		func() { c.Insert('\n') },
		func() { c.Insert(' ') },
		c.DeleteLeft,
		c.DeleteRight,
		c.MoveLeft,
		c.MoveRight,
		c.MoveUp,
		c.MoveDown,
		c.MoveHome,
		c.MoveEnd,
		c.MoveLeftByWord,
		c.MoveRightByWord,
		c.DeleteWordToTheLeft,
	}

	// Deterministic pseudo-random walk over the operations.
	seed := uint32(7)
	for range 5000 {
		seed = seed*1664525 + 1013904223
		ops[int(seed>>16)%len(ops)]()
		require.GreaterOrEqual(t, c.Position(), 0)
		require.LessOrEqual(t, c.Position(), c.Len())
	}
}

func TestTextCursorWordNavigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		start int
		right int
		left  int
	}{
		{name: "from start", text: "hello big world", start: 0, right: 6, left: 0},
		{name: "from inside a word", text: "hello big world", start: 7, right: 10, left: 6},
		{name: "from last word", text: "hello big world", start: 12, right: 15, left: 10},
		{name: "leading spaces", text: "  hello", start: 0, right: 2, left: 0},
		{name: "empty", text: "", start: 0, right: 0, left: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewTextCursor(tt.text)
			c.MoveHome()
			for range tt.start {
				c.MoveRight()
			}

			right := *c
			right.MoveRightByWord()
			assert.Equal(t, tt.right, right.Position(), "MoveRightByWord should land on expected offset")

			left := *c
			left.MoveLeftByWord()
			assert.Equal(t, tt.left, left.Position(), "MoveLeftByWord should land on expected offset")

			// Right then left lands on a word start.
			right.MoveLeftByWord()
			jumps := wordJumpIndices([]rune(tt.text))
			assert.Contains(t, jumps, right.Position(), "round trip should land on a word boundary")
		})
	}
}

func TestTextCursorLineNavigation(t *testing.T) {
	t.Parallel()

	c := NewTextCursor("hello\nworld")
	c.SetMultiline(true)
	c.MoveUp()
	c.MoveHome()
	c.MoveRight()
	require.Equal(t, 1, c.Position())
	r, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, 'e', r)

	c.MoveDown()
	assert.Equal(t, 7, c.Position(), "MoveDown should keep the column")
	r, _ = c.Current()
	assert.Equal(t, 'o', r)

	c.MoveDown()
	assert.Equal(t, 7, c.Position(), "MoveDown on the last line should be a no-op")

	c.MoveUp()
	assert.Equal(t, 1, c.Position(), "MoveUp should keep the column")
	c.MoveUp()
	assert.Equal(t, 1, c.Position(), "MoveUp on the first line should be a no-op")
}

func TestTextCursorLineNavigationClampsColumn(t *testing.T) {
	t.Parallel()

	c := NewTextCursor("a long line\nab\nanother long line")
	c.SetMultiline(true)
	c.MoveUp()
	c.MoveUp()
	c.MoveHome()
	for range 8 {
		c.MoveRight()
	}

	c.MoveDown()
	assert.Equal(t, 14, c.Position(), "column should clamp to the end of a short line")
	c.MoveEnd()
	assert.Equal(t, 14, c.Position())
	c.MoveHome()
	assert.Equal(t, 12, c.Position())
}

func TestTextCursorSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		cursor int
		left   string
		under  string
		right  string
	}{
		{name: "middle", text: "abc", cursor: 1, left: "a", under: "b", right: "c"},
		{name: "end", text: "abc", cursor: 3, left: "abc", under: " ", right: ""},
		{name: "empty", text: "", cursor: 0, left: "", under: " ", right: ""},
		{name: "on newline", text: "a\nb", cursor: 1, left: "a", under: " ", right: "\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewTextCursor(tt.text)
			c.SetMultiline(true)
			for c.Position() > tt.cursor {
				c.MoveLeft()
			}
			left, under, right := c.Split()
			assert.Equal(t, tt.left, left)
			assert.Equal(t, tt.under, under)
			assert.Equal(t, tt.right, right)
		})
	}
}

func TestTextCursorMaskedAndWipe(t *testing.T) {
	t.Parallel()

	c := NewTextCursor("secret")
	masked := c.Masked('▪')
	assert.Equal(t, strings.Repeat("▪", 6), masked.String())
	assert.Equal(t, c.Position(), masked.Position())

	backing := c.value[:cap(c.value)]
	c.Wipe()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Position())
	for _, r := range backing {
		assert.Equal(t, rune(0), r, "wiped buffer should hold no secret runes")
	}
}

func TestTextCursorWipeReachesOutgrownBuffers(t *testing.T) {
	t.Parallel()

	c := NewTextCursor("")
	var outgrown [][]rune
	for _, r := range strings.Repeat("hunter2", 20) {
		if len(c.value) == cap(c.value) && cap(c.value) > 0 {
			outgrown = append(outgrown, c.value[:cap(c.value)])
		}
		c.Insert(r)
	}
	c.Extend("!")
	require.NotEmpty(t, outgrown, "the buffer should have been reallocated")

	current := c.value[:cap(c.value)]
	c.Wipe()
	for _, backing := range append(outgrown, current) {
		for _, r := range backing {
			assert.Equal(t, rune(0), r, "no array ever used by the buffer should keep a secret rune")
		}
	}
}
