package picker

// MoveSelection shifts the selection cursor by delta positions, clamping at
// the first and last element of the view. There is no wraparound; repeated
// moves past either end hold at that end. No-op on an empty view.
func (l *List) MoveSelection(delta int) bool {
	if len(l.View) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.View) {
		l.Cursor = len(l.View) - 1
	}
	return l.Cursor != old
}

// MoveSelectionHome moves the selection to the first element.
func (l *List) MoveSelectionHome() bool {
	if len(l.View) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveSelectionEnd moves the selection to the last element.
func (l *List) MoveSelectionEnd() bool {
	n := len(l.View)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

// MoveSelectionPageUp moves the selection up by one page.
func (l *List) MoveSelectionPageUp(maxVisible int) bool {
	return l.MoveSelection(-l.pageSize(maxVisible))
}

// MoveSelectionPageDown moves the selection down by one page.
func (l *List) MoveSelectionPageDown(maxVisible int) bool {
	return l.MoveSelection(l.pageSize(maxVisible))
}

func (l *List) pageSize(maxVisible int) int {
	total := len(l.View)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the selection stays
// within the visible window.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if len(l.View) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.View) {
		l.Cursor = len(l.View) - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.View) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}
