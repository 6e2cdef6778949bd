// Package chrome renders the tour's header bar and navigation hints.
//
// Chrome is a pure projection of paginator state: every label it shows is
// recomputed from the latest position-changed notification, and it can be
// rebuilt from a paginator snapshot without losing anything.
package chrome

import (
	"github.com/charmbracelet/bubbles/help"
	dots "github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"welcometour/internal/i18n"
	"welcometour/internal/paginator"
	"welcometour/internal/ui/textutil"
	"welcometour/internal/ui/theme"
)

// Chrome is the title bar of the tour window.
type Chrome struct {
	tr         *i18n.Translator
	title      string
	primary    string
	navigation bool
	devel      bool
	keys       KeyMap
	dots       dots.Model
	help       help.Model
}

// New returns chrome in welcome mode (navigation hidden).
func New(tr *i18n.Translator) *Chrome {
	d := dots.New()
	d.Type = dots.Dots
	d.PerPage = 1
	d.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorHighlight)).Render("●")
	d.InactiveDot = theme.Styles.Muted.Render("○")

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = theme.Styles.Hint
	h.Styles.ShortSeparator = theme.Styles.Hint

	c := &Chrome{
		tr:   tr,
		keys: NewKeyMap(tr),
		dots: d,
		help: h,
	}
	c.primary = tr.T(i18n.Next)
	return c
}

// SetDevel marks the header with the devel profile badge.
func (c *Chrome) SetDevel(devel bool) { c.devel = devel }

// OnPositionChanged is the paginator subscription. It is the only place the
// primary button label is decided.
func (c *Chrome) OnPositionChanged(ev paginator.PositionChanged) {
	c.title = ev.Title
	if ev.IsLast {
		c.primary = c.tr.T(i18n.Close)
	} else {
		c.primary = c.tr.T(i18n.Next)
	}
	c.keys.Next.SetHelp(c.keys.Next.Help().Key, c.primary)
	if ev.Total > 0 {
		c.dots.SetTotalPages(ev.Total)
		c.dots.Page = ev.Index
	}
}

// Restore rebuilds the chrome from a paginator snapshot.
func (c *Chrome) Restore(snap paginator.PositionChanged) {
	c.OnPositionChanged(snap)
}

// ShowNavigationUI switches from the welcome header to the paged header.
func (c *Chrome) ShowNavigationUI() {
	c.navigation = true
	c.keys.setNavigation(true)
}

// HideNavigationUI switches back to the welcome header.
func (c *Chrome) HideNavigationUI() {
	c.navigation = false
	c.keys.setNavigation(false)
}

// NavigationVisible reports whether back/forward controls are shown.
func (c *Chrome) NavigationVisible() bool { return c.navigation }

// WelcomeVisible reports whether the welcome call-to-action row is shown.
// It is always the negation of NavigationVisible.
func (c *Chrome) WelcomeVisible() bool { return !c.navigation }

// Title returns the title of the page under the cursor.
func (c *Chrome) Title() string { return c.title }

// DisplayedTitle returns what the header currently shows.
func (c *Chrome) DisplayedTitle() string {
	if c.navigation {
		return c.title
	}
	return c.tr.T(i18n.WelcomeTour)
}

// PrimaryLabel returns the forward button label ("Next" or "Close").
func (c *Chrome) PrimaryLabel() string { return c.primary }

// Keys exposes the key bindings so the input layer and the hints agree.
func (c *Chrome) Keys() *KeyMap { return &c.keys }

// View renders the header bar at the given terminal width.
func (c *Chrome) View(width int) string {
	if width <= 0 {
		width = 80
	}
	var badge string
	if c.devel {
		badge = theme.Styles.Devel.Render(" devel")
	}
	inner := width - lipgloss.Width(badge)

	var row string
	if c.navigation {
		prev := theme.Styles.Button.Render(c.tr.T(i18n.Previous))
		next := theme.Styles.Suggested.Render(c.primary)
		room := max(inner-lipgloss.Width(prev)-lipgloss.Width(next), 0)
		title := theme.Styles.HeaderTitle.Render(textutil.Truncate(c.title, room-2))
		middle := lipgloss.PlaceHorizontal(room, lipgloss.Center, title)
		row = lipgloss.JoinHorizontal(lipgloss.Center, prev, middle, next)
	} else {
		title := theme.Styles.HeaderTitle.Render(textutil.Truncate(c.DisplayedTitle(), inner))
		row = lipgloss.PlaceHorizontal(inner, lipgloss.Center, title)
	}
	return theme.Styles.Header.Width(width).Render(row + badge)
}

// Footer renders page dots (while touring) and the key hints.
func (c *Chrome) Footer(width int) string {
	c.help.Width = width
	hints := c.help.ShortHelpView(c.keys.ShortHelp())
	if !c.navigation {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, hints)
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, c.dots.View()),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, hints),
	)
}
