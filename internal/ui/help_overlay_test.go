package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHelpOverlay_ListsRegistryBindings(t *testing.T) {
	a := NewAppModel(nil)
	out := NewHelpOverlay(a.KeyHandler.Registry).View()

	for _, want := range []string{"Decrement", "Increment", "Quit", "Help", "esc"} {
		if !strings.Contains(out, want) {
			t.Errorf("help overlay missing %q\n%s", want, out)
		}
	}
}

func TestHelpOverlay_TracksRegistry(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("r", func() tea.Msg { return nil }, "Reset")

	out := NewHelpOverlay(reg).View()
	if !strings.Contains(out, "Reset") {
		t.Errorf("help overlay should pick up new bindings\n%s", out)
	}
}
