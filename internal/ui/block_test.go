package ui

import (
	"strings"
	"testing"
)

func TestBlock_EmbedsTitlesInBorder(t *testing.T) {
	out := Block{
		Title:       " Top ",
		BottomTitle: " Bottom ",
		Body:        []string{"hi"},
		Width:       12,
		Height:      3,
	}.Render()

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	// Inner width 10; " Top " is 5 wide -> 2 fill left, 3 right.
	if lines[0] != "┏━━ Top ━━━┓" {
		t.Errorf("top row = %q", lines[0])
	}
	if lines[1] != "┃    hi    ┃" {
		t.Errorf("body row = %q", lines[1])
	}
	if lines[2] != "┗━ Bottom ━┛" {
		t.Errorf("bottom row = %q", lines[2])
	}
}

func TestBlock_BlankRowsPastBody(t *testing.T) {
	out := Block{Width: 6, Height: 4}.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(lines))
	}
	for _, row := range lines[1:3] {
		if row != "┃    ┃" {
			t.Errorf("blank row = %q", row)
		}
	}
}

func TestBlock_TooSmallRendersEmpty(t *testing.T) {
	if out := (Block{Width: 1, Height: 4}).Render(); out != "" {
		t.Errorf("width 1: got %q", out)
	}
	if out := (Block{Width: 50, Height: 1}).Render(); out != "" {
		t.Errorf("height 1: got %q", out)
	}
}

func TestCenter_OddPaddingGoesRight(t *testing.T) {
	if got := center("abc", 6, " "); got != " abc  " {
		t.Errorf("center = %q", got)
	}
	if got := center("toowide", 3, " "); got != "toowide" {
		t.Errorf("overflow center = %q", got)
	}
}
