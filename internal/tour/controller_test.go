package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"welcometour/internal/chrome"
	"welcometour/internal/i18n"
	"welcometour/internal/pages"
	"welcometour/internal/paginator"
)

type fakeShell struct {
	closed     int
	terminated int
}

func (s *fakeShell) Close()     { s.closed++ }
func (s *fakeShell) Terminate() { s.terminated++ }

func newTour(t testing.TB, titles ...string) (*Controller, *fakeShell) {
	t.Helper()
	content := make([]pages.Page, len(titles))
	for i, title := range titles {
		content[i] = pages.New("", title, "", "")
	}
	shell := &fakeShell{}
	ctl, err := New(pages.NewWelcome("", "Welcome", "", ""), content, chrome.New(i18n.New("en")), shell)
	require.NoError(t, err)
	return ctl, shell
}

func TestNew_RequiresContent(t *testing.T) {
	_, err := New(pages.NewWelcome("", "Welcome", "", ""), nil, chrome.New(i18n.New("en")), &fakeShell{})
	assert.ErrorIs(t, err, paginator.ErrEmpty)

	_, err = New(pages.NewWelcome("", "Welcome", "", ""), []pages.Page{pages.New("", "A", "", "")}, nil, &fakeShell{})
	assert.Error(t, err)
}

func TestNew_StartsOnWelcome(t *testing.T) {
	ctl, _ := newTour(t, "A", "B")
	assert.Equal(t, NotStarted, ctl.Mode())
	assert.Equal(t, "Welcome", ctl.Welcome().Title())
	assert.True(t, ctl.Chrome().WelcomeVisible())
	assert.Equal(t, 0, ctl.Position().Index)
}

// Welcome followed by A, B, C: start, advance to the end, then close.
func TestScenario_CompleteTour(t *testing.T) {
	ctl, shell := newTour(t, "A", "B", "C")
	c := ctl.Chrome()

	require.NoError(t, ctl.Start())
	assert.Equal(t, InProgress, ctl.Mode())
	assert.Equal(t, 0, ctl.Position().Index)
	assert.Equal(t, "A", c.Title())
	assert.Equal(t, "Next", c.PrimaryLabel())
	assert.True(t, c.NavigationVisible())

	require.NoError(t, ctl.Advance())
	require.NoError(t, ctl.Advance())
	assert.Equal(t, "C", c.Title())
	assert.Equal(t, "Close", c.PrimaryLabel())
	assert.Equal(t, 0, shell.closed)

	require.NoError(t, ctl.Advance())
	assert.Equal(t, 1, shell.closed)
	assert.Equal(t, 2, ctl.Position().Index)
	assert.Equal(t, 0, shell.terminated)
}

func TestScenario_RetreatFromFirstPageReturnsToWelcome(t *testing.T) {
	ctl, shell := newTour(t, "A", "B", "C")
	require.NoError(t, ctl.Start())

	require.NoError(t, ctl.Retreat())
	assert.Equal(t, NotStarted, ctl.Mode())
	assert.True(t, ctl.Chrome().WelcomeVisible())
	assert.Equal(t, 0, ctl.Position().Index)
	assert.Zero(t, shell.closed)
	assert.Zero(t, shell.terminated)

	// the tour can be taken again
	require.NoError(t, ctl.Start())
	assert.Equal(t, InProgress, ctl.Mode())
	assert.Equal(t, "A", ctl.Chrome().Title())
}

func TestScenario_SkipFromWelcome(t *testing.T) {
	ctl, shell := newTour(t, "A")
	require.NoError(t, ctl.Skip())
	assert.Equal(t, 1, shell.terminated)

	ctl, shell = newTour(t, "A", "B")
	require.NoError(t, ctl.Start())
	require.NoError(t, ctl.Quit())
	assert.Equal(t, 1, shell.terminated)
}

func TestWrongModeIsIgnored(t *testing.T) {
	ctl, shell := newTour(t, "A", "B")

	assert.ErrorIs(t, ctl.Advance(), ErrWrongMode)
	assert.ErrorIs(t, ctl.Retreat(), ErrWrongMode)
	assert.ErrorIs(t, ctl.JumpTo(1), ErrWrongMode)
	assert.Equal(t, NotStarted, ctl.Mode())

	require.NoError(t, ctl.Start())
	assert.ErrorIs(t, ctl.Start(), ErrWrongMode)
	assert.Equal(t, InProgress, ctl.Mode())
	assert.Zero(t, shell.closed)
}

func TestJumpTo(t *testing.T) {
	ctl, _ := newTour(t, "A", "B", "C")
	var events []Event
	ctl.Observe(func(ev Event) { events = append(events, ev) })
	require.NoError(t, ctl.Start())

	require.NoError(t, ctl.JumpTo(2))
	assert.Equal(t, "C", ctl.Chrome().Title())
	assert.Equal(t, "Close", ctl.Chrome().PrimaryLabel())

	assert.ErrorIs(t, ctl.JumpTo(7), paginator.ErrOutOfRange)
	assert.Equal(t, 2, ctl.Position().Index)

	require.NoError(t, ctl.JumpTo(2))
	require.Len(t, events, 4)
	assert.Equal(t, OutcomeMoved, events[1].Outcome)
	assert.Equal(t, OutcomeIgnored, events[2].Outcome)
	assert.Equal(t, OutcomeIgnored, events[3].Outcome)
}

func TestRestartAfterJumpResetsCursor(t *testing.T) {
	ctl, _ := newTour(t, "A", "B", "C")
	require.NoError(t, ctl.Start())
	require.NoError(t, ctl.JumpTo(1))
	require.NoError(t, ctl.Retreat())
	require.NoError(t, ctl.Retreat())
	assert.Equal(t, NotStarted, ctl.Mode())

	require.NoError(t, ctl.Start())
	assert.Equal(t, "A", ctl.Chrome().Title())
}

func TestObserveReportsOutcomes(t *testing.T) {
	ctl, _ := newTour(t, "A", "B")
	var got []string
	ctl.Observe(func(ev Event) { got = append(got, ev.Action.String()+":"+ev.Outcome.String()+":"+ev.Mode.String()) })
	ctl.Observe(nil)

	_ = ctl.Start()
	_ = ctl.Advance()
	_ = ctl.Advance()
	_ = ctl.Retreat()
	_ = ctl.Retreat()
	_ = ctl.Retreat()
	_ = ctl.Skip()

	assert.Equal(t, []string{
		"start:moved:InProgress",
		"advance:moved:InProgress",
		"advance:completed:InProgress",
		"retreat:moved:InProgress",
		"retreat:reset:NotStarted",
		"retreat:ignored:NotStarted",
		"skip:terminated:NotStarted",
	}, got)
}

// For any action sequence the chrome never disagrees with the paginator.
func TestChromeNeverStale(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(rt, "pages")
		titles := make([]string, n)
		for i := range titles {
			titles[i] = string(rune('A' + i))
		}
		ctl, _ := newTour(t, titles...)
		c := ctl.Chrome()

		ops := rapid.SliceOfN(rapid.IntRange(0, 3), 1, 40).Draw(rt, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				_ = ctl.Start()
			case 1:
				_ = ctl.Advance()
			case 2:
				_ = ctl.Retreat()
			case 3:
				_ = ctl.JumpTo(rapid.IntRange(-1, n).Draw(rt, "target"))
			}
			idx := ctl.Position().Index
			if idx < 0 || idx >= n {
				rt.Fatalf("index %d out of range", idx)
			}
			if c.Title() != titles[idx] {
				rt.Fatalf("chrome title %q, page %q", c.Title(), titles[idx])
			}
			if (c.PrimaryLabel() == "Close") != (idx == n-1) {
				rt.Fatalf("label %q at index %d of %d", c.PrimaryLabel(), idx, n)
			}
			if c.NavigationVisible() != (ctl.Mode() == InProgress) {
				rt.Fatalf("navigation visible %v in mode %v", c.NavigationVisible(), ctl.Mode())
			}
		}
	})
}
