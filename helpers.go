package clack

// listWindow is the range of list rows currently on screen.
// A size of 0 shows every row.
type listWindow struct {
	size int
	pos  int
}

// follow scrolls the minimum amount needed to keep cursor on screen.
func (w *listWindow) follow(cursor int) {
	if w.size <= 0 {
		w.pos = 0
		return
	}
	if cursor < w.pos {
		w.pos = cursor
	}
	if cursor >= w.pos+w.size {
		w.pos = cursor - w.size + 1
	}
}

// bounds returns the half-open range of rows to draw from a list of count rows.
func (w *listWindow) bounds(count int) (lo, hi int) {
	if w.size <= 0 {
		return 0, count
	}
	lo = min(max(w.pos, 0), count)
	hi = min(lo+w.size, count)
	return lo, hi
}

// fit shrinks the window to what a terminal of the given height can show
// below the header, the footer and, when filtering, the query line.
// An explicit size that already fits is kept.
func (w *listWindow) fit(height int, filtering bool) {
	maxSize := height - 3
	if filtering {
		maxSize--
	}
	maxSize = max(maxSize, 1)
	if w.size <= 0 || w.size > maxSize {
		w.size = maxSize
	}
}

// terminalHeight returns the number of rows of t, or defaultHeight when
// the size cannot be measured.
func terminalHeight(t Terminal) int {
	_, rows, err := t.Size()
	if err != nil || rows <= 0 {
		return defaultHeight
	}
	return rows
}

// moveCursor returns cursor moved by delta and clamped to [0, count).
func moveCursor(cursor, delta, count int) int {
	if count == 0 {
		return 0
	}
	return min(max(cursor+delta, 0), count-1)
}
