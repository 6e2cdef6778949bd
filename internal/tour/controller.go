// Package tour implements the tour controller: the only component that
// mutates the paginator, and the one that decides what reaching either end
// of the page sequence means.
package tour

import (
	"errors"
	"fmt"

	"welcometour/internal/chrome"
	"welcometour/internal/pages"
	"welcometour/internal/paginator"
)

// ErrWrongMode is returned when an action does not apply to the current mode.
// It is informational; the UI simply ignores the key press.
var ErrWrongMode = errors.New("tour: action not available in current mode")

// Shell is the window/application collaborator.
type Shell interface {
	// Close closes the tour window after the last page.
	Close()
	// Terminate ends the process when the user skips or quits.
	Terminate()
}

// Event reports one handled action to observers.
type Event struct {
	Action  Action
	Outcome Outcome
	Mode    Mode // mode after the action
	Index   int  // cursor after the action
	Title   string
	Err     error
}

// Controller owns the paginator and the chrome for one tour window.
type Controller struct {
	mode      Mode
	welcome   pages.Page
	pager     *paginator.Paginator
	chrome    *chrome.Chrome
	shell     Shell
	observers []func(Event)
}

// New builds a controller in NotStarted mode. content must not be empty.
func New(welcome pages.Page, content []pages.Page, c *chrome.Chrome, shell Shell) (*Controller, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("tour.New: %w", paginator.ErrEmpty)
	}
	if c == nil || shell == nil {
		return nil, errors.New("tour.New: chrome and shell are required")
	}
	p := paginator.New(content...)
	p.Subscribe(c.OnPositionChanged)
	c.Restore(p.Snapshot())
	c.HideNavigationUI()
	return &Controller{
		mode:    NotStarted,
		welcome: welcome,
		pager:   p,
		chrome:  c,
		shell:   shell,
	}, nil
}

// Observe registers fn to run after every action.
func (t *Controller) Observe(fn func(Event)) {
	if fn != nil {
		t.observers = append(t.observers, fn)
	}
}

// Mode returns the current presentation mode.
func (t *Controller) Mode() Mode { return t.mode }

// Welcome returns the welcome page.
func (t *Controller) Welcome() pages.Page { return t.welcome }

// Current returns the content page under the cursor.
func (t *Controller) Current() pages.Page { return t.pager.Current() }

// Position returns the paginator snapshot.
func (t *Controller) Position() paginator.PositionChanged { return t.pager.Snapshot() }

// Chrome returns the header chrome for rendering.
func (t *Controller) Chrome() *chrome.Chrome { return t.chrome }

// Start leaves the welcome screen and shows the first content page.
func (t *Controller) Start() error {
	if t.mode != NotStarted {
		return t.finish(ActionStart, OutcomeIgnored, ErrWrongMode)
	}
	if err := t.pager.Reset(); err != nil {
		return t.finish(ActionStart, OutcomeIgnored, err)
	}
	t.chrome.Restore(t.pager.Snapshot())
	t.chrome.ShowNavigationUI()
	t.mode = InProgress
	return t.finish(ActionStart, OutcomeMoved, nil)
}

// Advance moves forward; past the last page the window is closed.
func (t *Controller) Advance() error {
	if t.mode != InProgress {
		return t.finish(ActionAdvance, OutcomeIgnored, ErrWrongMode)
	}
	err := t.pager.Next()
	switch {
	case err == nil:
		return t.finish(ActionAdvance, OutcomeMoved, nil)
	case errors.Is(err, paginator.ErrAtUpperBound):
		t.shell.Close()
		return t.finish(ActionAdvance, OutcomeCompleted, nil)
	default:
		return t.finish(ActionAdvance, OutcomeIgnored, err)
	}
}

// Retreat moves back; before the first page the welcome screen returns.
func (t *Controller) Retreat() error {
	if t.mode != InProgress {
		return t.finish(ActionRetreat, OutcomeIgnored, ErrWrongMode)
	}
	err := t.pager.Previous()
	switch {
	case err == nil:
		return t.finish(ActionRetreat, OutcomeMoved, nil)
	case errors.Is(err, paginator.ErrAtLowerBound):
		t.chrome.HideNavigationUI()
		t.mode = NotStarted
		return t.finish(ActionRetreat, OutcomeReset, nil)
	default:
		return t.finish(ActionRetreat, OutcomeIgnored, err)
	}
}

// JumpTo is fed by the gesture layer once it settles on page index.
// Out-of-range pages are rejected without moving.
func (t *Controller) JumpTo(index int) error {
	if t.mode != InProgress {
		return t.finish(ActionJump, OutcomeIgnored, ErrWrongMode)
	}
	before := t.pager.Index()
	if err := t.pager.JumpTo(index); err != nil {
		return t.finish(ActionJump, OutcomeIgnored, err)
	}
	if t.pager.Index() == before {
		return t.finish(ActionJump, OutcomeIgnored, nil)
	}
	return t.finish(ActionJump, OutcomeMoved, nil)
}

// Skip terminates the application from any mode.
func (t *Controller) Skip() error {
	t.shell.Terminate()
	return t.finish(ActionSkip, OutcomeTerminated, nil)
}

// Quit is Skip under the name the quit accelerator uses.
func (t *Controller) Quit() error { return t.Skip() }

func (t *Controller) finish(a Action, o Outcome, err error) error {
	ev := Event{
		Action:  a,
		Outcome: o,
		Mode:    t.mode,
		Index:   t.pager.Index(),
		Title:   t.pager.Snapshot().Title,
		Err:     err,
	}
	for _, fn := range t.observers {
		fn(ev)
	}
	return err
}
