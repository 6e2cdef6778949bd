// Package i18n provides the translated labels used by the tour chrome and
// welcome screen.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	WelcomeTour = "Welcome Tour"
	Next        = "Next"
	Close       = "Close"
	Previous    = "Previous"
	TakeTour    = "Take the Tour"
	NoThanks    = "No Thanks"
	WelcomeTo   = "Welcome to %s %s"
	Intro       = "Hi there! If you are new to %s, you can take the tour to learn some essential features."
	Quit        = "Quit"
)

var translations = map[language.Tag]map[string]string{
	language.English: {},
	language.German: {
		WelcomeTour: "Willkommenstour",
		Next:        "Weiter",
		Close:       "Schließen",
		Previous:    "Zurück",
		TakeTour:    "Tour starten",
		NoThanks:    "Nein danke",
		WelcomeTo:   "Willkommen bei %s %s",
		Intro:       "Hallo! Wenn %s neu für Sie ist, können Sie die Tour machen, um einige wichtige Funktionen kennenzulernen.",
		Quit:        "Beenden",
	},
	language.French: {
		WelcomeTour: "Visite de bienvenue",
		Next:        "Suivant",
		Close:       "Fermer",
		Previous:    "Précédent",
		TakeTour:    "Faire la visite",
		NoThanks:    "Non merci",
		WelcomeTo:   "Bienvenue dans %s %s",
		Intro:       "Bonjour ! Si vous découvrez %s, vous pouvez faire la visite pour apprendre quelques fonctionnalités essentielles.",
		Quit:        "Quitter",
	},
	language.Spanish: {
		WelcomeTour: "Recorrido de bienvenida",
		Next:        "Siguiente",
		Close:       "Cerrar",
		Previous:    "Anterior",
		TakeTour:    "Hacer el recorrido",
		NoThanks:    "No, gracias",
		WelcomeTo:   "Bienvenido a %s %s",
		Intro:       "¡Hola! Si es nuevo en %s, puede hacer el recorrido para conocer algunas funciones esenciales.",
		Quit:        "Salir",
	},
}

// supported lists the catalog languages; the first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var (
	cat     catalog.Catalog
	matcher = language.NewMatcher(supported)
)

func init() {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, tag := range supported {
		for key, msg := range translations[tag] {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	cat = b
}

// Translator renders labels for one locale.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a translator for the closest supported match of locale.
// locale may be a BCP 47 tag ("de-DE") or a POSIX locale ("de_DE.UTF-8");
// an empty or unparseable locale selects English.
func New(locale string) *Translator {
	tag := Match(locale)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Match resolves locale to a supported language.
func Match(locale string) language.Tag {
	locale = normalizePOSIX(locale)
	if locale == "" {
		return language.English
	}
	parsed, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// Tag returns the language the translator renders.
func (t *Translator) Tag() language.Tag { return t.tag }

// T formats the message for key.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

// normalizePOSIX turns "de_DE.UTF-8@euro" into "de-DE". "C" and "POSIX" map to "".
func normalizePOSIX(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}
