package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlay is the modal listing all bound keys, opened with "?".
// Its bindings are generated from the registry's hints so the popup can
// never drift from what is actually bound.
type HelpOverlay struct {
	help     help.Model
	bindings []key.Binding
}

// NewHelpOverlay creates the help popup from the registry's bindings.
func NewHelpOverlay(reg *KeybindRegistry) *HelpOverlay {
	h := help.New()
	h.Styles.ShortKey = Styles.Key
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint

	hints := reg.Hints()
	names := make([]string, 0, len(hints))
	for k := range hints {
		names = append(names, k)
	}
	sort.Strings(names)

	bindings := make([]key.Binding, 0, len(names)+1)
	for _, k := range names {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	// The dismiss key is handled by the overlay stack, not the registry.
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Close help"),
	))

	return &HelpOverlay{help: h, bindings: bindings}
}

// Init implements View.
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update implements View. Dismissal is handled by the overlay stack.
func (h *HelpOverlay) Update(tea.Msg) (View, tea.Cmd) {
	return h, nil
}

// View implements View.
func (h *HelpOverlay) View() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)
	return box.Render(h.help.ShortHelpView(h.bindings))
}
