// Package paginator owns the ordered tour pages and the current-position cursor.
//
// Navigation either moves the cursor and synchronously notifies subscribers,
// or returns an error and leaves the cursor untouched. Reaching either end of
// the sequence is reported with ErrAtUpperBound / ErrAtLowerBound; callers
// decide what falling off an end means.
package paginator

import (
	"errors"

	"welcometour/internal/pages"
)

var (
	ErrAtUpperBound = errors.New("paginator: already at the last page")
	ErrAtLowerBound = errors.New("paginator: already at the first page")
	ErrOutOfRange   = errors.New("paginator: page index out of range")
	ErrEmpty        = errors.New("paginator: no pages registered")
	ErrReentrant    = errors.New("paginator: navigation during position-changed notification")
)

// PositionChanged describes the cursor after a successful move.
type PositionChanged struct {
	Index  int
	Total  int
	Title  string
	IsLast bool
}

// Paginator is not safe for concurrent use; it is driven from the UI event loop.
type Paginator struct {
	pages     []pages.Page
	current   int
	listeners []func(PositionChanged)
	notifying bool
}

// New returns an empty paginator. Pages must be registered before navigation.
func New(initial ...pages.Page) *Paginator {
	p := &Paginator{}
	for _, pg := range initial {
		p.Register(pg)
	}
	return p
}

// Register appends a page. Only meant for setup, before any navigation.
func (p *Paginator) Register(pg pages.Page) {
	p.pages = append(p.pages, pg)
}

// Subscribe adds a position-changed listener. Listeners run synchronously,
// in subscription order, before the navigating call returns.
func (p *Paginator) Subscribe(fn func(PositionChanged)) {
	if fn != nil {
		p.listeners = append(p.listeners, fn)
	}
}

// Next moves one page forward.
func (p *Paginator) Next() error {
	if err := p.guard(); err != nil {
		return err
	}
	if p.current+1 >= len(p.pages) {
		return ErrAtUpperBound
	}
	p.move(p.current + 1)
	return nil
}

// Previous moves one page back.
func (p *Paginator) Previous() error {
	if err := p.guard(); err != nil {
		return err
	}
	if p.current == 0 {
		return ErrAtLowerBound
	}
	p.move(p.current - 1)
	return nil
}

// JumpTo moves to an absolute index. Out-of-range indexes are rejected
// without mutation. Jumping to the current index is a silent no-op.
func (p *Paginator) JumpTo(index int) error {
	if err := p.guard(); err != nil {
		return err
	}
	if index < 0 || index >= len(p.pages) {
		return ErrOutOfRange
	}
	if index != p.current {
		p.move(index)
	}
	return nil
}

// Reset returns the cursor to the first page.
func (p *Paginator) Reset() error {
	return p.JumpTo(0)
}

// Current returns the page under the cursor. It panics if no page was
// registered, which is a setup error.
func (p *Paginator) Current() pages.Page {
	if len(p.pages) == 0 {
		panic(ErrEmpty)
	}
	return p.pages[p.current]
}

// Index returns the cursor position.
func (p *Paginator) Index() int { return p.current }

// Len returns the number of registered pages.
func (p *Paginator) Len() int { return len(p.pages) }

// Pages returns a copy of the registered pages in order.
func (p *Paginator) Pages() []pages.Page {
	out := make([]pages.Page, len(p.pages))
	copy(out, p.pages)
	return out
}

// Snapshot describes the current position as a notification would.
func (p *Paginator) Snapshot() PositionChanged {
	if len(p.pages) == 0 {
		return PositionChanged{}
	}
	return PositionChanged{
		Index:  p.current,
		Total:  len(p.pages),
		Title:  p.pages[p.current].Title(),
		IsLast: p.current == len(p.pages)-1,
	}
}

func (p *Paginator) guard() error {
	if p.notifying {
		return ErrReentrant
	}
	if len(p.pages) == 0 {
		return ErrEmpty
	}
	return nil
}

func (p *Paginator) move(index int) {
	p.current = index
	ev := p.Snapshot()
	p.notifying = true
	defer func() { p.notifying = false }()
	for _, fn := range p.listeners {
		fn(ev)
	}
}
