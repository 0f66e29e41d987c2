package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bcachefstui/internal/counter"
)

// appTitle is the top border title of the panel.
const appTitle = "Bcachefs TUI"

// Default frame size used before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 50
	defaultHeight = 4
)

// CounterView is the single screen. It owns the counter and the status row
// where recoverable counter errors are reported.
type CounterView struct {
	Counter counter.Counter
	Status  string // last overflow/underflow report, empty when the last press succeeded
	Width   int
	Height  int
}

// NewCounterView creates the view with default state and frame size.
func NewCounterView() *CounterView {
	return &CounterView{Width: defaultWidth, Height: defaultHeight}
}

// Init implements View.
func (v *CounterView) Init() tea.Cmd {
	return nil
}

// Update implements View. The view only reacts to resizes; key dispatch and
// counter mutation happen in AppModel so rendering stays a pure read of state.
func (v *CounterView) Update(msg tea.Msg) (View, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		v.Width = size.Width
		v.Height = size.Height
	}
	return v, nil
}

// View implements View.
func (v *CounterView) View() string {
	return v.Render(v.Width, v.Height)
}

// Render draws the panel at the given size. Pure: the same state and size
// always produce identical output.
func (v *CounterView) Render(width, height int) string {
	body := []string{
		"Value: " + Styles.Value.Render(strconv.Itoa(int(v.Counter.Value()))),
	}
	if v.Status != "" {
		body = append(body, Styles.Status.Render(v.Status))
	}
	return Block{
		Title:       Styles.Title.Render(" " + appTitle + " "),
		BottomTitle: instructionBar(keys.ShortHelp()),
		Body:        body,
		Width:       width,
		Height:      height,
	}.Render()
}

// instructionBar renders " Decrement <j> Increment <k> Quit <q>" from the
// short-help bindings, with each key token emphasized.
func instructionBar(bindings []key.Binding) string {
	var out string
	for _, b := range bindings {
		h := b.Help()
		out += " " + h.Desc + " " + Styles.Key.Render("<"+h.Key+">")
	}
	return out
}
