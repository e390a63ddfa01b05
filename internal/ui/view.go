package ui

import (
	"strings"

	"github.com/atomicstack/checklist/internal/checklist"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.headerText(), style: m.styles.Header})

	views := m.list.Views()
	if len(views) == 0 {
		lines = append(lines, styledLine{text: "(no entries)", style: m.styles.Info})
	}
	for _, v := range views {
		lines = append(lines, m.buildRowLine(v))
	}

	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: render(m.styles.Footer, m.help.View(m.keys)), raw: true})
	}
	// Reserve the bottom row for the status line.
	lines = limitHeight(lines, m.height-1, m.width)
	lines = applyWidth(lines, m.width)

	var status styledLine
	switch {
	case m.errMsg != "":
		status = styledLine{text: "Error: " + m.errMsg, style: m.styles.Error}
	case m.currentInfo() != "":
		status = styledLine{text: m.infoMsg, style: m.styles.Status}
	}
	lines = append(lines, applyWidth([]styledLine{status}, m.width)...)
	return renderLines(lines)
}

// buildRowLine draws one recycled row view. Focus and the checkbox glyph are
// read back from the view's classes so the screen matches what the checklist
// applied.
func (m *Model) buildRowLine(v *checklist.View) styledLine {
	classes := m.list.Classes()
	focused := v.Container.HasClass("focus")
	checked := v.Checked()

	bar, barStyle := m.glyphs.Blur, m.styles.Item
	if focused {
		bar, barStyle = m.glyphs.Focus, m.styles.FocusIndicator
	}

	box, boxStyle := m.glyphs.Checkbox, m.styles.Checkbox
	if v.Indicator != nil && v.Indicator.HasClass(classes.IconActive) {
		box, boxStyle = m.glyphs.CheckboxActive, m.styles.CheckboxActive
	}

	lineStyle := m.styles.Item
	switch {
	case focused:
		lineStyle = m.styles.FocusItem
	case checked:
		lineStyle = m.styles.CheckedItem
	}

	title := ""
	if v.Title != nil {
		title = v.Title.Text()
	}
	text := " " + title
	if m.width > 0 {
		used := lipgloss.Width(bar) + lipgloss.Width(box) + lipgloss.Width(text)
		if pad := m.width - used; pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text: render(barStyle, bar) + render(boxStyle, box) + render(lineStyle, text),
		raw:  true,
	}
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
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
			if lipgloss.Width(text) > width {
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
		if line.raw {
			out[i] = line.text
			continue
		}
		out[i] = render(line.style, line.text)
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
