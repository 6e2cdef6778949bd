package ui

import (
	"errors"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"welcometour/internal/chrome"
	"welcometour/internal/i18n"
	"welcometour/internal/osinfo"
	"welcometour/internal/pages"
	"welcometour/internal/paginator"
	"welcometour/internal/tour"
)

// Result is how the program ended.
type Result int

const (
	ResultNone      Result = iota // still running
	ResultCompleted               // advanced past the last page
	ResultSkipped                 // No Thanks or quit
)

func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultCompleted:
		return "completed"
	case ResultSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// teaShell is the tour.Shell for a Bubble Tea program: it records the
// result and the adapter turns it into tea.Quit.
type teaShell struct {
	result Result
}

func (s *teaShell) Close()     { s.result = ResultCompleted }
func (s *teaShell) Terminate() { s.result = ResultSkipped }

// Options configures NewAppModel.
type Options struct {
	Content       []pages.Page // defaults to pages.Default()
	Info          osinfo.Info
	Translator    *i18n.Translator // defaults to English
	Devel         bool
	Mouse         bool
	MarkdownStyle string // glamour style; "auto" when empty
	Observers     []func(tour.Event)
}

// AppModel is the root model: the tour controller plus presentation state.
type AppModel struct {
	Tour       *tour.Controller
	KeyHandler *KeyHandler
	Markdown   *MarkdownRenderer
	Carousel   Carousel
	Focus      *FocusManager
	Mouse      bool

	tr     *i18n.Translator
	shell  *teaShell
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model on the welcome screen.
func NewAppModel(opts Options) (*AppModel, error) {
	tr := opts.Translator
	if tr == nil {
		tr = i18n.New("")
	}
	content := opts.Content
	if content == nil {
		content = pages.Default()
	}
	info := opts.Info
	if info == (osinfo.Info{}) {
		info = osinfo.Default()
	}

	c := chrome.New(tr)
	c.SetDevel(opts.Devel)
	welcome := pages.NewWelcome(
		info.Logo,
		tr.T(i18n.WelcomeTour),
		tr.T(i18n.WelcomeTo, info.Name, info.Version),
		tr.T(i18n.Intro, info.Name),
	)
	shell := &teaShell{}
	ctl, err := tour.New(welcome, content, c, shell)
	if err != nil {
		return nil, err
	}
	for _, fn := range opts.Observers {
		ctl.Observe(fn)
	}

	km := c.Keys()
	labels := map[string]string{focusStart: tr.T(i18n.TakeTour), focusSkip: tr.T(i18n.NoThanks)}
	focus := NewWelcomeFocus(func(_, to string) {
		km.Start.SetHelp("enter", labels[to])
	})

	return &AppModel{
		Tour:       ctl,
		KeyHandler: NewKeyHandler(newTourKeybinds(km)),
		Markdown:   NewMarkdownRenderer(opts.MarkdownStyle, defaultWidth-2*pagePadding),
		Focus:      focus,
		Mouse:      opts.Mouse,
		tr:         tr,
		shell:      shell,
	}, nil
}

// newTourKeybinds maps the chrome's key bindings onto tour messages.
func newTourKeybinds(km *chrome.KeyMap) *KeybindRegistry {
	reg := NewKeybindRegistry()
	send := func(msg tea.Msg) tea.Cmd {
		return func() tea.Msg { return msg }
	}
	reg.BindKey(km.Start, send(StartTourMsg{}), tour.NotStarted)
	reg.BindKey(km.Skip, send(SkipTourMsg{}), tour.NotStarted)
	// enter activates whichever welcome action has focus; t always starts.
	welcome := []tour.Mode{tour.NotStarted}
	reg.BindWithDescForMode("enter", send(ActivateFocusedMsg{}), km.Start.Help().Desc, welcome)
	reg.BindWithDescForMode("tab", send(FocusNextMsg{}), "", welcome)
	reg.BindWithDescForMode("shift+tab", send(FocusPrevMsg{}), "", welcome)
	reg.BindKey(km.Next, send(NextPageMsg{}), tour.InProgress)
	reg.BindKey(km.Previous, send(PreviousPageMsg{}), tour.InProgress)
	reg.BindKey(km.Quit, send(QuitMsg{}))
	for i, k := range km.Jump.Keys() {
		reg.BindWithDescForMode(k, send(JumpToPageMsg{Index: i}), "", []tour.Mode{tour.InProgress})
	}
	return reg
}

// Result reports how the tour ended, or ResultNone while running.
func (m *AppModel) Result() Result { return m.shell.result }

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Markdown.SetWidth(a.contentWidth())
		return a, nil
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Tour.Mode()); consumed {
			return a, cmd
		}
		return a, nil
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	case gestureSettleMsg:
		if idx, ok := a.Carousel.Settle(msg, a.Tour.Position().Total); ok {
			return a.dispatch(a.Tour.JumpTo(idx))
		}
		return a, nil
	case FocusNextMsg:
		a.Focus.Next()
		return a, nil
	case FocusPrevMsg:
		a.Focus.Prev()
		return a, nil
	case ActivateFocusedMsg:
		if a.Focus.Current == focusSkip {
			return a.dispatch(a.Tour.Skip())
		}
		return a.dispatch(a.Tour.Start())
	case StartTourMsg:
		a.Carousel.Cancel()
		return a.dispatch(a.Tour.Start())
	case NextPageMsg:
		a.Carousel.Cancel()
		return a.dispatch(a.Tour.Advance())
	case PreviousPageMsg:
		a.Carousel.Cancel()
		return a.dispatch(a.Tour.Retreat())
	case JumpToPageMsg:
		a.Carousel.Cancel()
		return a.dispatch(a.Tour.JumpTo(msg.Index))
	case SkipTourMsg, QuitMsg:
		return a.dispatch(a.Tour.Skip())
	}
	return a, nil
}

func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !a.Mouse || a.Tour.Mode() != tour.InProgress || msg.Action != tea.MouseActionPress {
		return nil
	}
	origin := a.Tour.Position().Index
	switch msg.Button {
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return a.Carousel.Scroll(origin, wheelStep)
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return a.Carousel.Scroll(origin, -wheelStep)
	}
	return nil
}

// dispatch logs unexpected tour errors and quits once the shell was closed
// or terminated. Wrong-mode and out-of-range results are ordinary ignores.
func (a *appModelAdapter) dispatch(err error) (tea.Model, tea.Cmd) {
	if err != nil && !errors.Is(err, tour.ErrWrongMode) && !errors.Is(err, paginator.ErrOutOfRange) {
		log.Printf("ui.dispatch: %v", err)
	}
	if a.shell.result != ResultNone {
		return a, tea.Quit
	}
	return a, nil
}
