package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"welcometour/internal/tour"
)

// KeybindRegistry maps key strings to commands.
// Single keys use tea.KeyMsg.String() notation: "q", "esc", "ctrl+q", "enter";
// space is stored as "SPC".
type KeybindRegistry struct {
	bindings     map[string][]modeBinding
	descriptions map[string]string
}

type modeBinding struct {
	cmd   tea.Cmd
	modes []tour.Mode // nil/empty = applies to all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string][]modeBinding),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key for all modes.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDescForMode(seq, cmd, "", nil)
}

// BindWithDescForMode registers a key with a description and mode filter.
// The same key may be bound to different commands in different modes
// ("enter" starts the tour on the welcome screen and advances while touring).
// A later binding for an overlapping mode replaces the earlier one.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []tour.Mode) {
	n := normalizeSeq(seq)
	kept := r.bindings[n][:0]
	for _, b := range r.bindings[n] {
		if !overlaps(b.modes, modes) {
			kept = append(kept, b)
		}
	}
	r.bindings[n] = append(kept, modeBinding{cmd: cmd, modes: modes})
	if desc != "" {
		r.descriptions[n] = desc
	}
}

// BindKey registers every key of a bubbles key.Binding for the given modes,
// using the binding's help text as description.
func (r *KeybindRegistry) BindKey(b key.Binding, cmd tea.Cmd, modes ...tour.Mode) {
	for _, k := range b.Keys() {
		r.BindWithDescForMode(k, cmd, b.Help().Desc, modes)
	}
}

// Lookup returns the command for a key in mode, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string, mode tour.Mode) tea.Cmd {
	for _, b := range r.bindings[normalizeSeq(seq)] {
		if appliesToMode(b.modes, mode) {
			return b.cmd
		}
	}
	return nil
}

// Hints returns the keys bound in mode with their descriptions.
func (r *KeybindRegistry) Hints(mode tour.Mode) map[string]string {
	out := make(map[string]string)
	for seq, bs := range r.bindings {
		for _, b := range bs {
			if b.cmd == nil || !appliesToMode(b.modes, mode) {
				continue
			}
			if d, ok := r.descriptions[seq]; ok && d != "" {
				out[seq] = d
			} else {
				out[seq] = seq
			}
		}
	}
	return out
}

func appliesToMode(modes []tour.Mode, mode tour.Mode) bool {
	if len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

func overlaps(a, b []tour.Mode) bool {
	if len(a) == 0 || len(b) == 0 {
		return true
	}
	for _, m := range a {
		if appliesToMode(b, m) {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" / " " -> "SPC".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	if len(parts) == 0 && seq != "" {
		return "SPC"
	}
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler dispatches key presses to the registry for the current mode.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is false the key is unbound in mode.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode tour.Mode) (consumed bool, cmd tea.Cmd) {
	if c := h.Registry.Lookup(msg.String(), mode); c != nil {
		return true, c
	}
	return false, nil
}
