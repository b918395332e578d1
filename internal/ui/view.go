package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/appswitch/appswitch/internal/apps"
	"github.com/appswitch/appswitch/internal/picker"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

const (
	browseHeader = "running applications"
	searchHeader = "search applications"

	browseFooter = "↑/↓ move  enter open  o open  k quit-app  / search  q quit"
	searchFooter = "↑/↓ move  enter open  backspace delete  esc cancel"
)

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.header(), style: styles.Header})

	if m.loading {
		lines = append(lines, styledLine{text: "Loading applications…", style: styles.Loading})
	} else if len(m.list.View) == 0 {
		msg := "(no applications)"
		if m.list.Query != "" {
			msg = fmt.Sprintf("No matches for %q", m.list.Query)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		m.syncViewport()
		start := 0
		display := m.list.View
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(display) > maxItems {
			start = m.list.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(display) {
				start = len(display) - maxItems
				if start < 0 {
					start = 0
				}
				m.list.ViewportOffset = start
			}
			display = display[start : start+maxItems]
		}
		for i, match := range display {
			selected := start+i == m.list.Cursor
			lines = append(lines, styledLine{text: m.renderItem(match, selected, m.width), raw: true})
		}
	}

	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		footer := browseFooter
		if m.mode == picker.ModeSearch {
			footer = searchFooter
		}
		lines = append(lines, styledLine{text: footer, style: styles.Footer})
	}

	// Reserve 2 rows for the bottom bar (error/status + prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	var promptLine styledLine
	if m.mode == picker.ModeSearch {
		promptLine = styledLine{text: m.filterPrompt(), raw: true}
	}
	bottomLines := applyWidth([]styledLine{statusLine, promptLine}, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) header() string {
	if m.mode == picker.ModeSearch {
		return searchHeader
	}
	return browseHeader
}

// renderItem builds one item row: indicator, icon, and the label with the
// matched runes highlighted. Selected rows carry the selection background
// across the full width.
func (m *Model) renderItem(match picker.Match, selected bool, width int) string {
	indicatorStyle := styles.ItemIndicator
	lineStyle := styles.Item
	matchStyle := styles.Match
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
		matchStyle = styles.SelectedMatch
	}
	text := renderSegment(indicatorStyle, "▌") +
		renderSegment(lineStyle, " "+apps.IconFor(match.Label)+" ") +
		highlightLabel(match.Label, match.Positions, lineStyle, matchStyle)
	if width <= 0 {
		return text
	}
	w := lipgloss.Width(text)
	if w > width {
		return truncate.StringWithTail(text, uint(width-1), "…")
	}
	if pad := width - w; pad > 0 {
		text += renderSegment(lineStyle, strings.Repeat(" ", pad))
	}
	return text
}

// highlightLabel styles the label runes, switching style over the matched
// positions. Positions are rune offsets in ascending order.
func highlightLabel(label string, positions []int, base, match *lipgloss.Style) string {
	if len(positions) == 0 {
		return renderSegment(base, label)
	}
	marked := make(map[int]struct{}, len(positions))
	for _, pos := range positions {
		marked[pos] = struct{}{}
	}
	runes := []rune(label)
	var out strings.Builder
	var segment []rune
	segmentMatched := false
	flush := func() {
		if len(segment) == 0 {
			return
		}
		style := base
		if segmentMatched {
			style = match
		}
		out.WriteString(renderSegment(style, string(segment)))
		segment = segment[:0]
	}
	for i, r := range runes {
		_, matched := marked[i]
		if matched != segmentMatched {
			flush()
			segmentMatched = matched
		}
		segment = append(segment, r)
	}
	flush()
	return out.String()
}

func renderSegment(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	used++    // header
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
