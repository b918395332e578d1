// Package fuzzy scores candidate strings against a query.
//
// A query matches a candidate when it appears as a contiguous run of runes
// inside the candidate, compared case-insensitively. Whitespace in the query
// is an ordinary rune and must itself be matched; it is never treated as a
// token separator.
package fuzzy

import (
	"sort"
	"strings"
)

// Match describes a successful query match against a single candidate.
type Match struct {
	Score     float64
	Positions []int
}

// Rank pairs a match with the index of the candidate it was computed from.
type Rank struct {
	Index int
	Match
}

// separators mark word boundaries inside candidate text.
const separators = " -_./"

// Score matches query against text and reports the match score together with
// the rune positions that matched. The boolean is false when query does not
// occur as a contiguous run inside text. When the query occurs more than
// once, the best-scoring occurrence wins. An empty query matches with the
// baseline score.
func Score(query, text string) (Match, bool) {
	if query == "" {
		return Match{}, true
	}
	queryRunes := []rune(strings.ToLower(query))
	textRunes := []rune(strings.ToLower(text))
	if len(queryRunes) > len(textRunes) {
		return Match{}, false
	}

	best := Match{}
	found := false
	for start := 0; start+len(queryRunes) <= len(textRunes); start++ {
		if !runMatchesAt(textRunes, queryRunes, start) {
			continue
		}
		m := scoreRun(textRunes, queryRunes, start)
		if !found || m.Score > best.Score {
			best = m
			found = true
		}
	}
	return best, found
}

// RankAll scores query against every candidate and returns the matches in
// descending score order. Ties break by shorter candidate, then by original
// index, so equal inputs always produce the same ordering.
func RankAll(query string, candidates []string) []Rank {
	ranks := make([]Rank, 0, len(candidates))
	for i, text := range candidates {
		m, ok := Score(query, text)
		if !ok {
			continue
		}
		ranks = append(ranks, Rank{Index: i, Match: m})
	}
	sort.SliceStable(ranks, func(a, b int) bool {
		ra, rb := ranks[a], ranks[b]
		if ra.Score != rb.Score {
			return ra.Score > rb.Score
		}
		la := len([]rune(candidates[ra.Index]))
		lb := len([]rune(candidates[rb.Index]))
		if la != lb {
			return la < lb
		}
		return ra.Index < rb.Index
	})
	return ranks
}

func runMatchesAt(textRunes, queryRunes []rune, start int) bool {
	for i, qr := range queryRunes {
		if textRunes[start+i] != qr {
			return false
		}
	}
	return true
}

// scoreRun rates the occurrence of the query starting at start. Each matched
// rune contributes coverage, a word-boundary bonus and an adjacency credit,
// and the raw score is then weighted toward occurrences packed near the head
// of short candidates.
func scoreRun(textRunes, queryRunes []rune, start int) Match {
	positions := make([]int, len(queryRunes))
	score := 0.0
	for i := range queryRunes {
		pos := start + i
		positions[i] = pos
		score += 1.0
		if pos == 0 || isSeparator(textRunes[pos-1]) {
			score += 1.0
		}
		if i > 0 {
			score += 2.0
		}
	}

	last := start + len(queryRunes) - 1
	score *= float64(len(queryRunes)) / float64(last+1)
	score *= 10.0 / (float64(len(textRunes)) + 10.0)

	return Match{Score: score, Positions: positions}
}

func isSeparator(r rune) bool {
	return strings.ContainsRune(separators, r)
}
