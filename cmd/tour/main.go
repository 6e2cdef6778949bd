package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"welcometour/internal/config"
	"welcometour/internal/i18n"
	"welcometour/internal/osinfo"
	"welcometour/internal/pages"
	"welcometour/internal/trace"
	"welcometour/internal/tour"
	"welcometour/internal/ui"
)

// applyFlags parses args and overrides cfg with every flag the user set.
func applyFlags(cfg config.Config, args []string) (config.Config, error) {
	fs := flag.NewFlagSet("tour", flag.ContinueOnError)
	pagesFile := fs.String("pages", cfg.PagesFile, "YAML file with the tour pages (default: built-in pages)")
	locale := fs.String("locale", cfg.Locale, "UI locale, e.g. de_DE.UTF-8 (default: $LANG)")
	osRelease := fs.String("os-release", cfg.OSRelease, "os-release file to read the distribution name from")
	logFile := fs.String("log-file", cfg.LogFile, "append debug logs to this file")
	devel := fs.Bool("devel", cfg.Devel(), "use the devel profile")
	noMouse := fs.Bool("no-mouse", !cfg.Mouse, "disable mouse wheel page scrolling")
	noAltScreen := fs.Bool("no-alt-screen", !cfg.AltScreen, "render inline instead of the alternate screen")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: tour [flags]\n\n")
		fmt.Fprintf(fs.Output(), "Shows the first-run welcome tour.\n")
		fmt.Fprintf(fs.Output(), "Configuration file: %s\n\n", config.Path())
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.PagesFile = *pagesFile
	cfg.Locale = *locale
	cfg.OSRelease = *osRelease
	cfg.LogFile = *logFile
	cfg.Mouse = !*noMouse
	cfg.AltScreen = !*noAltScreen
	if *devel {
		cfg.Profile = config.ProfileDevel
	} else if cfg.Profile == config.ProfileDevel {
		cfg.Profile = config.ProfileDefault
	}
	return cfg, nil
}

// loadContent returns the configured page set, or the built-in one.
func loadContent(cfg config.Config) ([]pages.Page, error) {
	if cfg.PagesFile == "" {
		return pages.Default(), nil
	}
	return pages.LoadFile(cfg.PagesFile)
}

func logEvent(ev tour.Event) {
	if ev.Err != nil {
		log.Printf("tour: %s %s mode=%s page=%d: %v", ev.Action, ev.Outcome, ev.Mode, ev.Index, ev.Err)
		return
	}
	log.Printf("tour: %s %s mode=%s page=%d %q", ev.Action, ev.Outcome, ev.Mode, ev.Index, ev.Title)
}

func run(cfg config.Config) error {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "tour")
		if err != nil {
			return fmt.Errorf("log file %q: %w", cfg.LogFile, err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("config: profile=%s pages=%q locale=%q mouse=%v alt-screen=%v",
		cfg.Profile, cfg.PagesFile, cfg.Locale, cfg.Mouse, cfg.AltScreen)

	content, err := loadContent(cfg)
	if err != nil {
		return err
	}

	observers := []func(tour.Event){logEvent}
	if cfg.Trace.Enabled {
		exp, err := trace.NewOTLPExporter(context.Background())
		if err != nil {
			log.Printf("trace: exporter disabled: %v", err)
		}
		if exp != nil {
			observers = append(observers, exp.Observe)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := exp.Shutdown(ctx); err != nil {
					log.Printf("trace: shutdown: %v", err)
				}
			}()
		}
	}

	model, err := ui.NewAppModel(ui.Options{
		Content:    content,
		Info:       osinfo.Lookup(cfg.OSRelease),
		Translator: i18n.New(cfg.Locale),
		Devel:      cfg.Devel(),
		Mouse:      cfg.Mouse,
		Observers:  observers,
	})
	if err != nil {
		return err
	}

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model.AsTeaModel(), opts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	log.Printf("tour: finished (%s)", model.Result())
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tour: %v\n", err)
		os.Exit(1)
	}
	cfg, err = applyFlags(cfg, os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "tour: %v\n", err)
		os.Exit(1)
	}
}
