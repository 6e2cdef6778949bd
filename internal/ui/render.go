package ui

import (
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"welcometour/internal/i18n"
	"welcometour/internal/tour"
	"welcometour/internal/ui/textutil"
	"welcometour/internal/ui/theme"
)

const (
	defaultWidth  = 80
	maxPageWidth  = 72
	pagePadding   = 4
	illustrationW = 36
)

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.shell.result != ResultNone {
		return ""
	}
	width := a.width
	if width <= 0 {
		width = defaultWidth
	}
	c := a.Tour.Chrome()
	header := c.View(width)
	footer := c.Footer(width)

	var body string
	if a.Tour.Mode() == tour.NotStarted {
		body = a.renderWelcome()
	} else {
		body = a.renderPage()
	}

	if a.height > 0 {
		room := a.height - lipgloss.Height(header) - lipgloss.Height(footer)
		if room > 0 {
			body = lipgloss.Place(width, room, lipgloss.Center, lipgloss.Center, body)
		}
	} else {
		body = lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (a *appModelAdapter) contentWidth() int {
	w := a.width
	if w <= 0 {
		w = defaultWidth
	}
	return min(w-2*pagePadding, maxPageWidth)
}

// renderWelcome draws the logo, greeting and the call-to-action row.
func (a *appModelAdapter) renderWelcome() string {
	w := a.Tour.Welcome()
	width := a.contentWidth()

	logo := theme.Styles.Logo.Render("◆ " + w.Resource())
	title := theme.Styles.LargeTitle.Render(textutil.Truncate(w.Heading(), width))
	intro := theme.Styles.Body.Render(centerLines(textutil.Wrap(w.Body(), width)))

	skip := a.actionStyle(focusSkip).Render(a.tr.T(i18n.NoThanks))
	start := a.actionStyle(focusStart).Render(a.tr.T(i18n.TakeTour))
	actions := lipgloss.JoinHorizontal(lipgloss.Center, skip, "   ", start)

	return lipgloss.JoinVertical(lipgloss.Center,
		logo,
		title,
		"",
		intro,
		"",
		actions,
	)
}

// actionStyle highlights the focused welcome action.
func (a *appModelAdapter) actionStyle(id string) lipgloss.Style {
	if a.Focus.Current == id {
		return theme.Styles.Suggested
	}
	return theme.Styles.Button
}

// renderPage draws the current content page.
func (a *appModelAdapter) renderPage() string {
	p := a.Tour.Current()
	pos := a.Tour.Position()
	width := a.contentWidth()

	name := path.Base(p.Resource())
	if p.Resource() == "" {
		name = p.Title()
	}
	illustration := theme.Styles.Illustration.
		Width(min(illustrationW, width)).
		Align(lipgloss.Center).
		Render(textutil.Truncate(name, min(illustrationW, width)-8))

	heading := theme.Styles.Heading
	if pos.IsLast {
		heading = heading.Inherit(theme.Styles.LastPage)
	}
	parts := []string{
		illustration,
		heading.Render(centerLines(textutil.Wrap(p.Heading(), width))),
	}
	if body := a.Markdown.Render(p.Body()); body != "" {
		parts = append(parts, "", body)
	}
	if off, ok := a.Carousel.Offset(); ok {
		parts = append(parts, theme.Styles.Hint.Render(scrollIndicator(off, pos.Total)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func centerLines(lines []string) string {
	return lipgloss.NewStyle().Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

// scrollIndicator shows where an in-flight wheel gesture would settle.
func scrollIndicator(offset float64, total int) string {
	if total <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < total; i++ {
		d := offset - float64(i)
		if d > -0.5 && d <= 0.5 {
			b.WriteString("▮")
		} else {
			b.WriteString("▯")
		}
	}
	return b.String()
}
