package chrome

import (
	"github.com/charmbracelet/bubbles/key"

	"welcometour/internal/i18n"
)

// KeyMap holds the tour's key bindings. Bindings that do not apply to the
// current presentation mode are disabled, so key.Matches and the help view
// both ignore them.
type KeyMap struct {
	Start    key.Binding
	Skip     key.Binding
	Next     key.Binding
	Previous key.Binding
	Jump     key.Binding
	Quit     key.Binding
}

// NewKeyMap builds the bindings in welcome mode.
func NewKeyMap(tr *i18n.Translator) KeyMap {
	km := KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", "t"),
			key.WithHelp("enter", tr.T(i18n.TakeTour)),
		),
		Skip: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc", tr.T(i18n.NoThanks)),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "enter", " "),
			key.WithHelp("→", tr.T(i18n.Next)),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "backspace"),
			key.WithHelp("←", tr.T(i18n.Previous)),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "q", "ctrl+c"),
			key.WithHelp("q", tr.T(i18n.Quit)),
		),
	}
	km.setNavigation(false)
	return km
}

func (km *KeyMap) setNavigation(on bool) {
	km.Start.SetEnabled(!on)
	km.Skip.SetEnabled(!on)
	km.Next.SetEnabled(on)
	km.Previous.SetEnabled(on)
	km.Jump.SetEnabled(on)
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Start, km.Skip, km.Previous, km.Next, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}
