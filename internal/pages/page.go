// Package pages defines the content units shown by the welcome tour.
//
// A Page is immutable once built. Content pages are usually loaded from the
// embedded default set or from a YAML file supplied at startup; the welcome
// page is a distinguished variant built from os-release information.
package pages

// Kind distinguishes the welcome page from illustrated content pages.
type Kind int

const (
	KindImage Kind = iota
	KindWelcome
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "Image"
	case KindWelcome:
		return "Welcome"
	default:
		return "Unknown"
	}
}

// Page is a single tour page. Fields are unexported so a registered page
// cannot be changed behind the paginator's back.
type Page struct {
	kind     Kind
	resource string
	title    string
	heading  string
	body     string
}

// New builds an illustrated content page.
// resource identifies the illustration (e.g. "/org/gnome/Tour/search.svg").
func New(resource, title, heading, body string) Page {
	return Page{
		kind:     KindImage,
		resource: resource,
		title:    title,
		heading:  heading,
		body:     body,
	}
}

// NewWelcome builds the welcome page. logo names the distribution icon.
func NewWelcome(logo, title, heading, body string) Page {
	return Page{
		kind:     KindWelcome,
		resource: logo,
		title:    title,
		heading:  heading,
		body:     body,
	}
}

func (p Page) Kind() Kind { return p.kind }
func (p Page) Resource() string { return p.resource }
func (p Page) Title() string { return p.title }
func (p Page) Heading() string { return p.heading }
func (p Page) Body() string { return p.body }
func (p Page) IsWelcome() bool { return p.kind == KindWelcome }
