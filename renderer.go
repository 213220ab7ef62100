package clack

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// renderer redraws prompt frames on a terminal without flicker.
//
// A frame is only written when it differs from the previous one. Before
// writing, the renderer erases exactly the lines the previous frame occupies
// on screen, counting the extra rows the terminal adds when it soft-wraps a
// line wider than the window. Widths are measured with escape sequences
// stripped, so themed output counts the same as plain text.
type renderer struct {
	term      Terminal
	logger    *slog.Logger
	prevFrame string
}

// newRenderer creates a renderer drawing on term.
func newRenderer(term Terminal, logger *slog.Logger) *renderer {
	return &renderer{
		term:   term,
		logger: logger,
	}
}

// draw replaces the previous frame with frame.
func (r *renderer) draw(frame string) error {
	if frame == r.prevFrame {
		return nil
	}

	width, _, err := r.term.Size()
	if err != nil || width <= 0 {
		width = defaultWidth
	}
	lines := wrappedLineCount(r.prevFrame, width)
	r.logger.Debug("redraw prompt", "cleared_lines", lines, "width", width)

	if err := r.term.ClearLastLines(lines); err != nil {
		return fmt.Errorf("failed to clear previous frame: %w", err)
	}
	if _, err := r.term.Write([]byte(frame)); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	r.prevFrame = frame
	return nil
}

// wrappedLineCount returns how many terminal rows frame occupies when printed
// in a window width columns wide. A trailing newline does not start a new row.
func wrappedLineCount(frame string, width int) int {
	if frame == "" {
		return 0
	}
	if width <= 0 {
		width = defaultWidth
	}

	count := 0
	for line := range strings.SplitSeq(strings.TrimSuffix(frame, "\n"), "\n") {
		w := ansi.StringWidth(line)
		if w <= width {
			count++
			continue
		}
		count += (w + width - 1) / width
	}
	return count
}
