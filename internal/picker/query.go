package picker

import "unicode"

// QueryCursorPos returns the rune offset of the query cursor, clamped to the
// current query text.
func (l *List) QueryCursorPos() int {
	runes := []rune(l.Query)
	if l.QueryCursor < 0 {
		return 0
	}
	if l.QueryCursor > len(runes) {
		return len(runes)
	}
	return l.QueryCursor
}

// InsertText inserts text into the query at the cursor position.
func (l *List) InsertText(text string) bool {
	if text == "" {
		return false
	}
	insert := []rune(text)
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes the rune before the query cursor.
func (l *List) DeleteRuneBackward() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	l.SetQuery(string(updated), pos-1)
	return true
}

// DeleteWordBackward deletes the word preceding the query cursor.
func (l *List) DeleteWordBackward() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	l.SetQuery(string(updated), i)
	return true
}

// ClearQuery empties the query text.
func (l *List) ClearQuery() bool {
	if l.Query == "" {
		return false
	}
	l.SetQuery("", 0)
	return true
}

// MoveQueryCursorStart moves the query cursor to the start of the text.
func (l *List) MoveQueryCursorStart() bool {
	if l.QueryCursorPos() == 0 {
		return false
	}
	l.QueryCursor = 0
	return true
}

// MoveQueryCursorEnd moves the query cursor past the last rune.
func (l *List) MoveQueryCursorEnd() bool {
	end := len([]rune(l.Query))
	if l.QueryCursorPos() == end {
		return false
	}
	l.QueryCursor = end
	return true
}

// MoveQueryCursorWordBackward moves the query cursor one word backward.
func (l *List) MoveQueryCursorWordBackward() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	l.QueryCursor = i
	return true
}

// MoveQueryCursorWordForward moves the query cursor one word forward.
func (l *List) MoveQueryCursorWordForward() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	l.QueryCursor = i
	return true
}

// MoveQueryCursorRuneBackward moves the query cursor one rune backward.
func (l *List) MoveQueryCursorRuneBackward() bool {
	if l.QueryCursorPos() == 0 {
		return false
	}
	l.QueryCursor = l.QueryCursorPos() - 1
	return true
}

// MoveQueryCursorRuneForward moves the query cursor one rune forward.
func (l *List) MoveQueryCursorRuneForward() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	l.QueryCursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
