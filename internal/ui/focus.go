package ui

// Welcome screen action IDs, in focus order.
const (
	focusStart = "start"
	focusSkip  = "skip"
)

// FocusManager tracks and rotates focus across the welcome screen actions.
type FocusManager struct {
	Current  string   // ID of the focused action
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// NewWelcomeFocus starts with "Take the Tour" focused.
func NewWelcomeFocus(onChange func(from, to string)) *FocusManager {
	return &FocusManager{
		Current:  focusStart,
		Order:    []string{focusStart, focusSkip},
		OnChange: onChange,
	}
}

// Next advances focus to the next action in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.rotate(1)
}

// Prev moves focus to the previous action in order.
func (f *FocusManager) Prev() string {
	return f.rotate(-1)
}

func (f *FocusManager) rotate(step int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := 0
	for i, id := range f.Order {
		if id == f.Current {
			idx = i
			break
		}
	}
	n := len(f.Order)
	return f.set(f.Order[((idx+step)%n+n)%n])
}

// SetFocus sets focus to the given action ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

func (f *FocusManager) set(id string) string {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
	return id
}
