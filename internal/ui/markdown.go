package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders page bodies with glamour. Output is cached per
// body until the wrap width changes.
type MarkdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
	cache    map[string]string
}

// NewMarkdownRenderer creates a renderer. style is a glamour standard style
// name ("auto", "dark", "light", "notty").
func NewMarkdownRenderer(style string, width int) *MarkdownRenderer {
	m := &MarkdownRenderer{style: style, cache: make(map[string]string)}
	m.SetWidth(width)
	return m
}

// SetWidth rebuilds the underlying renderer when the wrap width changes.
func (m *MarkdownRenderer) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	if width == m.width && m.renderer != nil {
		return
	}
	m.width = width
	m.cache = make(map[string]string)

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if m.style == "" || m.style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(m.style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		log.Printf("ui.MarkdownRenderer.SetWidth: glamour init failed, rendering plain text: %v", err)
		m.renderer = nil
		return
	}
	m.renderer = r
}

// Render returns the styled body, falling back to the raw text on error.
func (m *MarkdownRenderer) Render(body string) string {
	if body == "" {
		return ""
	}
	if out, ok := m.cache[body]; ok {
		return out
	}
	out := body
	if m.renderer != nil {
		r, err := m.renderer.Render(body)
		if err != nil {
			log.Printf("ui.MarkdownRenderer.Render: %v", err)
		} else {
			out = strings.Trim(r, "\n")
		}
	}
	m.cache[body] = out
	return out
}
