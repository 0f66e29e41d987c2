package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// IncrementMsg is sent when the user presses the increment key.
type IncrementMsg struct{}

// DecrementMsg is sent when the user presses the decrement key.
type DecrementMsg struct{}

// QuitRequestedMsg is sent when the user presses a quit key.
type QuitRequestedMsg struct{}

// ShowHelpMsg is sent when the user opens the help overlay.
type ShowHelpMsg struct{}

// KeyRecorder receives the outcome of every dispatched key press.
// A nil-receiver-safe implementation may be nil-valued.
type KeyRecorder interface {
	RecordKey(key string, err error)
}

// AppModel is the root model: the counter screen plus the overlay stack.
// Counter bound errors are recoverable: they land in the screen's status row
// and the loop keeps running.
type AppModel struct {
	Screen     *CounterView
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Recorder   KeyRecorder

	// Exiting latches true once a quit key fires; it is never reset.
	Exiting bool
}

// NewAppModel creates the root application model with the default key table.
func NewAppModel(rec KeyRecorder) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("j", func() tea.Msg { return DecrementMsg{} }, "Decrement")
	reg.BindWithDesc("k", func() tea.Msg { return IncrementMsg{} }, "Increment")
	reg.BindWithDesc("q", func() tea.Msg { return QuitRequestedMsg{} }, "Quit")
	reg.BindWithDesc("ctrl+c", func() tea.Msg { return QuitRequestedMsg{} }, "Quit")
	reg.BindWithDesc("?", func() tea.Msg { return ShowHelpMsg{} }, "Help")
	return &AppModel{
		Screen:     NewCounterView(),
		KeyHandler: NewKeyHandler(reg),
		Recorder:   rec,
	}
}

// AsTeaModel adapts the AppModel for tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Screen.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case IncrementMsg:
		a.report("k", a.Screen.Counter.Increment())
		return a, nil
	case DecrementMsg:
		a.report("j", a.Screen.Counter.Decrement())
		return a, nil
	case QuitRequestedMsg:
		a.Exiting = true
		a.report("q", nil)
		return a, tea.Quit
	case ShowHelpMsg:
		a.Overlays.Push(Overlay{View: NewHelpOverlay(a.KeyHandler.Registry), Dismiss: "esc"})
		return a, nil
	case tea.KeyMsg:
		if top, ok := a.Overlays.Peek(); ok {
			s := msg.String()
			switch {
			case top.IsDismissKey(s) || s == "?":
				a.Overlays.Pop()
			case s == "q" || s == "ctrl+c":
				return a, func() tea.Msg { return QuitRequestedMsg{} }
			}
			return a, nil
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
		// Unbound keys are no-ops.
		return a, nil
	}

	v, cmd := a.Screen.Update(msg)
	if s, ok := v.(*CounterView); ok {
		a.Screen = s
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Screen.View()
	if top, ok := a.Overlays.Peek(); ok {
		base += "\n" + top.View.View()
	}
	return base
}

// report records a dispatched key press and surfaces recoverable errors in
// the status row. A successful press clears the previous report.
func (a *AppModel) report(key string, err error) {
	if err != nil {
		a.Screen.Status = err.Error()
		log.Printf("key %q: %v", key, err)
	} else {
		a.Screen.Status = ""
	}
	if a.Recorder != nil {
		a.Recorder.RecordKey(key, err)
	}
}
