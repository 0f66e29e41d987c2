package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Thick box-drawing set, matching lipgloss.ThickBorder().
const (
	borderHorizontal  = "━"
	borderVertical    = "┃"
	borderTopLeft     = "┏"
	borderTopRight    = "┓"
	borderBottomLeft  = "┗"
	borderBottomRight = "┛"
)

// Block renders a bordered frame with titles embedded in the border rows.
// Title is centered over the top border, BottomTitle over the bottom border,
// and Body lines are centered within the frame; rows past the body are blank.
// Fields may contain ANSI styling; centering is display-width aware.
// Render is a pure function of the fields.
type Block struct {
	Title       string
	BottomTitle string
	Body        []string
	Width       int
	Height      int
}

// Render produces the frame as Height newline-joined rows of Width cells.
// Frames smaller than 2x2 have no interior and render empty.
func (b Block) Render() string {
	if b.Width < 2 || b.Height < 2 {
		return ""
	}
	inner := b.Width - 2

	rows := make([]string, 0, b.Height)
	rows = append(rows, borderTopLeft+embedTitle(b.Title, inner)+borderTopRight)
	for i := 0; i < b.Height-2; i++ {
		line := ""
		if i < len(b.Body) {
			line = b.Body[i]
		}
		rows = append(rows, borderVertical+center(line, inner, " ")+borderVertical)
	}
	rows = append(rows, borderBottomLeft+embedTitle(b.BottomTitle, inner)+borderBottomRight)
	return strings.Join(rows, "\n")
}

// embedTitle centers title over a run of horizontal border cells.
func embedTitle(title string, width int) string {
	return center(title, width, borderHorizontal)
}

// center pads s to width display cells with fill on both sides, extra cell on
// the right when the padding is odd. Content wider than width is returned as is.
func center(s string, width int, fill string) string {
	free := width - lipgloss.Width(s)
	if free <= 0 {
		return s
	}
	left := free / 2
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, free-left)
}
