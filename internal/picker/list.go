// Package picker implements the interactive selection engine: a candidate
// list narrowed by a fuzzy query, a clamped selection cursor, and the
// translation of key events into engine commands.
package picker

import "github.com/appswitch/appswitch/internal/fuzzy"

// Candidate is one selectable application in a session. The ID doubles as
// the argument handed to the action executor.
type Candidate struct {
	ID    string
	Label string
}

// Match pairs a candidate with its score and matched rune positions under
// the current query.
type Match struct {
	Candidate
	Score     float64
	Positions []int
}

// List owns the full candidate set for a session's lifetime and derives the
// ranked view from the current query. The full set never changes while the
// list is active.
type List struct {
	Full           []Candidate
	View           []Match
	Query          string
	QueryCursor    int
	Cursor         int
	ViewportOffset int
}

// NewList constructs a list whose initial view is the full candidate set.
func NewList(candidates []Candidate) *List {
	l := &List{Full: CloneCandidates(candidates)}
	l.applyQuery()
	return l
}

// SetQuery replaces the query text and cursor, recomputes the ranked view,
// and resets the selection to the top of the view.
func (l *List) SetQuery(text string, cursor int) {
	l.Query = text
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	l.QueryCursor = cursor
	l.applyQuery()
	l.Cursor = 0
	l.ViewportOffset = 0
}

// applyQuery rebuilds the view. An empty query admits every candidate in
// enumeration order; otherwise candidates are ranked by descending score.
func (l *List) applyQuery() {
	if l.Query == "" {
		view := make([]Match, len(l.Full))
		for i, c := range l.Full {
			view[i] = Match{Candidate: c}
		}
		l.View = view
	} else {
		labels := make([]string, len(l.Full))
		for i, c := range l.Full {
			labels[i] = c.Label
		}
		ranks := fuzzy.RankAll(l.Query, labels)
		view := make([]Match, 0, len(ranks))
		for _, r := range ranks {
			view = append(view, Match{
				Candidate: l.Full[r.Index],
				Score:     r.Score,
				Positions: r.Positions,
			})
		}
		l.View = view
	}
	if len(l.View) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor >= len(l.View) {
		l.Cursor = len(l.View) - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.ViewportOffset > len(l.View)-1 {
		l.ViewportOffset = 0
	}
}

// Current returns the candidate under the selection cursor. The boolean is
// false when the view is empty.
func (l *List) Current() (Candidate, bool) {
	if len(l.View) == 0 || l.Cursor < 0 || l.Cursor >= len(l.View) {
		return Candidate{}, false
	}
	return l.View[l.Cursor].Candidate, true
}

// CloneCandidates produces a shallow copy of the provided candidates.
func CloneCandidates(candidates []Candidate) []Candidate {
	dup := make([]Candidate, len(candidates))
	copy(dup, candidates)
	return dup
}

// CandidatesFromNames builds candidates whose ID and label are both the
// given name.
func CandidatesFromNames(names []string) []Candidate {
	candidates := make([]Candidate, len(names))
	for i, name := range names {
		candidates[i] = Candidate{ID: name, Label: name}
	}
	return candidates
}
