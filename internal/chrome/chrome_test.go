package chrome

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"welcometour/internal/i18n"
	"welcometour/internal/paginator"
)

func newChrome() *Chrome {
	return New(i18n.New("en"))
}

func TestOnPositionChanged_LabelFollowsIsLast(t *testing.T) {
	c := newChrome()

	c.OnPositionChanged(paginator.PositionChanged{Index: 0, Total: 3, Title: "A"})
	assert.Equal(t, "A", c.Title())
	assert.Equal(t, "Next", c.PrimaryLabel())

	c.OnPositionChanged(paginator.PositionChanged{Index: 2, Total: 3, Title: "C", IsLast: true})
	assert.Equal(t, "C", c.Title())
	assert.Equal(t, "Close", c.PrimaryLabel())
	assert.Equal(t, "Close", c.Keys().Next.Help().Desc, "hint follows the button label")

	c.OnPositionChanged(paginator.PositionChanged{Index: 1, Total: 3, Title: "B"})
	assert.Equal(t, "Next", c.PrimaryLabel())
}

func TestOnPositionChanged_Localized(t *testing.T) {
	c := New(i18n.New("de_DE.UTF-8"))
	c.OnPositionChanged(paginator.PositionChanged{Index: 1, Total: 2, Title: "Suche", IsLast: true})
	assert.Equal(t, "Schließen", c.PrimaryLabel())
}

func TestNavigationVisibilityIsExclusive(t *testing.T) {
	c := newChrome()
	assert.False(t, c.NavigationVisible())
	assert.True(t, c.WelcomeVisible())
	assert.Equal(t, "Welcome Tour", c.DisplayedTitle())

	c.OnPositionChanged(paginator.PositionChanged{Index: 0, Total: 2, Title: "A"})
	c.ShowNavigationUI()
	assert.True(t, c.NavigationVisible())
	assert.False(t, c.WelcomeVisible())
	assert.Equal(t, "A", c.DisplayedTitle())

	c.HideNavigationUI()
	assert.False(t, c.NavigationVisible())
	assert.True(t, c.WelcomeVisible())
}

func TestKeys_EnabledPerMode(t *testing.T) {
	c := newChrome()
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	assert.True(t, key.Matches(enter, c.Keys().Start))
	assert.False(t, key.Matches(enter, c.Keys().Next))

	c.ShowNavigationUI()
	assert.False(t, key.Matches(enter, c.Keys().Start))
	assert.True(t, key.Matches(enter, c.Keys().Next))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyLeft}, c.Keys().Previous))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}}, c.Keys().Jump))
}

// Recreating the chrome from a snapshot loses nothing.
func TestRestore_MatchesLiveChrome(t *testing.T) {
	ev := paginator.PositionChanged{Index: 2, Total: 3, Title: "C", IsLast: true}
	live := newChrome()
	live.OnPositionChanged(ev)
	live.ShowNavigationUI()

	fresh := newChrome()
	fresh.Restore(ev)
	fresh.ShowNavigationUI()

	assert.Equal(t, live.Title(), fresh.Title())
	assert.Equal(t, live.PrimaryLabel(), fresh.PrimaryLabel())
	assert.Equal(t, live.View(80), fresh.View(80))
	assert.Equal(t, live.Footer(80), fresh.Footer(80))
}

func TestView(t *testing.T) {
	c := newChrome()
	assert.Contains(t, c.View(80), "Welcome Tour")
	assert.NotContains(t, c.View(80), "Previous")
	assert.Contains(t, c.Footer(80), "Take the Tour")

	c.OnPositionChanged(paginator.PositionChanged{Index: 0, Total: 3, Title: "Activities Overview"})
	c.ShowNavigationUI()
	view := c.View(80)
	assert.Contains(t, view, "Previous")
	assert.Contains(t, view, "Activities Overview")
	assert.Contains(t, view, "Next")
	assert.NotContains(t, c.Footer(80), "Take the Tour")
}

func TestView_DevelBadgeAndNarrowWidth(t *testing.T) {
	c := newChrome()
	c.SetDevel(true)
	assert.Contains(t, c.View(60), "devel")

	c.OnPositionChanged(paginator.PositionChanged{Index: 0, Total: 2, Title: strings.Repeat("x", 200)})
	c.ShowNavigationUI()
	assert.Contains(t, c.View(40), "…")
}
