package ui

// StartTourMsg leaves the welcome screen (enter / t / "Take the Tour").
type StartTourMsg struct{}

// ActivateFocusedMsg triggers the focused welcome action (enter).
type ActivateFocusedMsg struct{}

// FocusNextMsg and FocusPrevMsg move focus between the welcome actions (tab / shift+tab).
type (
	FocusNextMsg struct{}
	FocusPrevMsg struct{}
)

// SkipTourMsg ends the program without touring (esc / n / "No Thanks").
type SkipTourMsg struct{}

// QuitMsg ends the program from any screen (q / ctrl+q).
type QuitMsg struct{}

// NextPageMsg moves forward, closing the tour after the last page.
type NextPageMsg struct{}

// PreviousPageMsg moves back, returning to the welcome screen before the first page.
type PreviousPageMsg struct{}

// JumpToPageMsg is emitted once a gesture or number key settles on a page.
type JumpToPageMsg struct {
	Index int // 0-based content page index
}

// gestureSettleMsg fires after the wheel has been idle; seq discards stale ticks.
type gestureSettleMsg struct {
	seq int
}
