package ui

import tea "github.com/charmbracelet/bubbletea"

// KeybindRegistry maps single key identities to commands.
// Keys use tea.KeyMsg.String() notation: "j", "q", "esc", "ctrl+c".
// The mapping is closed: a key is either bound or falls through as a no-op,
// so dispatch stays total and there are no conditional chains to keep in sync.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command. Overwrites any existing binding.
func (r *KeybindRegistry) Bind(key string, cmd tea.Cmd) {
	r.BindWithDesc(key, cmd, "")
}

// BindWithDesc registers a key with a description for the help overlay.
func (r *KeybindRegistry) BindWithDesc(key string, cmd tea.Cmd, desc string) {
	r.bindings[key] = cmd
	if desc != "" {
		r.descriptions[key] = desc
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(key string) tea.Cmd {
	return r.bindings[key]
}

// Hints returns all bound keys with descriptions for display.
// Values fall back to the key itself when no description was set.
func (r *KeybindRegistry) Hints() map[string]string {
	out := make(map[string]string)
	for key, cmd := range r.bindings {
		if cmd == nil {
			continue
		}
		if d, ok := r.descriptions[key]; ok && d != "" {
			out[key] = d
		} else {
			out[key] = key
		}
	}
	return out
}

// KeyHandler dispatches key messages against the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over the given registry.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was bound and should not be passed to views.
// Unbound keys are not consumed and mutate nothing.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if c := h.Registry.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}
