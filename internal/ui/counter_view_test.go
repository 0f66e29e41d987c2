package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestCounterView_GoldenGrid(t *testing.T) {
	v := NewCounterView()
	want := strings.Join([]string{
		"┏━━━━━━━━━━━━━━━━━ Bcachefs TUI ━━━━━━━━━━━━━━━━━┓",
		"┃                    Value: 0                    ┃",
		"┃                                                ┃",
		"┗━━━━━ Decrement <j> Increment <k> Quit <q>━━━━━━┛",
	}, "\n")

	got := v.Render(50, 4)
	if got != want {
		t.Errorf("render mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestCounterView_RenderIsIdempotent(t *testing.T) {
	v := NewCounterView()
	first := v.Render(50, 4)
	second := v.Render(50, 4)
	if first != second {
		t.Error("rendering the same state twice should produce byte-identical output")
	}
}

func TestCounterView_StatusRowShowsReport(t *testing.T) {
	v := NewCounterView()
	v.Status = "counter overflow"

	lines := strings.Split(v.Render(50, 4), "\n")
	// "counter overflow" is 16 wide; inner width 48 -> 16 fill each side.
	if lines[2] != "┃                counter overflow                ┃" {
		t.Errorf("status row = %q", lines[2])
	}
}

func TestCounterView_ValueTracksCounter(t *testing.T) {
	v := NewCounterView()
	if err := v.Counter.Increment(); err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if !strings.Contains(v.Render(50, 4), "Value: 1") {
		t.Error("expected Value: 1 after increment")
	}
}

func TestCounterView_EmphasisStyling(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	out := NewCounterView().Render(50, 4)
	title := Styles.Title.Render(" " + appTitle + " ")
	if title == " "+appTitle+" " {
		t.Fatal("title style should emit escape sequences under ANSI256")
	}
	if !strings.Contains(out, title) {
		t.Error("title should carry emphasis styling")
	}
	for _, tok := range []string{"<j>", "<k>", "<q>"} {
		if !strings.Contains(out, Styles.Key.Render(tok)) {
			t.Errorf("key token %s should carry emphasis styling", tok)
		}
	}
	if !strings.Contains(out, Styles.Value.Render("0")) {
		t.Error("numeral should carry emphasis styling")
	}
}

func TestCounterView_TracksResize(t *testing.T) {
	v := NewCounterView()
	updated, _ := v.Update(sizeMsg(60, 10))
	s, ok := updated.(*CounterView)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	if s.Width != 60 || s.Height != 10 {
		t.Errorf("size = %dx%d, want 60x10", s.Width, s.Height)
	}
	rows := strings.Split(s.View(), "\n")
	if len(rows) != 10 {
		t.Errorf("expected 10 rows after resize, got %d", len(rows))
	}
}
