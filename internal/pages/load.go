package pages

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	// ErrNoPages is returned when a page file declares no pages.
	ErrNoPages = errors.New("pages: no pages declared")
	// ErrMissingTitle is returned when a page entry has an empty title.
	ErrMissingTitle = errors.New("pages: page has no title")
)

// pageFile is the on-disk layout of a page set.
type pageFile struct {
	Pages []pageEntry `yaml:"pages"`
}

type pageEntry struct {
	Resource string `yaml:"resource"`
	Title    string `yaml:"title"`
	Heading  string `yaml:"heading"`
	Body     string `yaml:"body"`
}

// Load decodes a YAML page set. Pages are returned in declaration order.
func Load(r io.Reader) ([]Page, error) {
	var f pageFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoPages
		}
		return nil, fmt.Errorf("pages: decode: %w", err)
	}
	if len(f.Pages) == 0 {
		return nil, ErrNoPages
	}
	out := make([]Page, 0, len(f.Pages))
	for i, e := range f.Pages {
		if e.Title == "" {
			return nil, fmt.Errorf("page %d: %w", i, ErrMissingTitle)
		}
		out = append(out, New(e.Resource, e.Title, e.Heading, e.Body))
	}
	return out, nil
}

// LoadFile reads a YAML page set from path.
func LoadFile(path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pages: open %q: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in tour content.
func Default() []Page {
	out, err := Load(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(fmt.Sprintf("pages: embedded default set is invalid: %v", err))
	}
	return out
}
