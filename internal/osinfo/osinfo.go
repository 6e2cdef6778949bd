// Package osinfo reads the distribution identity shown on the welcome screen.
package osinfo

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Fallbacks used when os-release is missing or incomplete.
const (
	DefaultName    = "GNOME"
	DefaultVersion = "3.36"
	DefaultLogo    = "start-here-symbolic"
)

// SearchPaths lists the os-release locations in lookup order.
var SearchPaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// Info is the subset of os-release the tour displays.
type Info struct {
	Name    string
	Version string
	Logo    string
}

// Default returns the fallback identity.
func Default() Info {
	return Info{Name: DefaultName, Version: DefaultVersion, Logo: DefaultLogo}
}

// Read parses an os-release file at path. Missing keys fall back to Default.
func Read(path string) (Info, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.SetDefault("name", DefaultName)
	v.SetDefault("version", DefaultVersion)
	v.SetDefault("logo", DefaultLogo)
	if err := v.ReadInConfig(); err != nil {
		return Default(), fmt.Errorf("osinfo: read %q: %w", path, err)
	}
	return Info{
		Name:    v.GetString("name"),
		Version: v.GetString("version"),
		Logo:    v.GetString("logo"),
	}, nil
}

// Lookup tries override first, then SearchPaths, returning the first
// readable file. It never fails; unreadable files are logged and skipped.
func Lookup(override string) Info {
	candidates := SearchPaths
	if override != "" {
		candidates = append([]string{override}, SearchPaths...)
	}
	for _, path := range candidates {
		info, err := Read(path)
		if err == nil {
			return info
		}
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("osinfo.Lookup: %v", err)
		}
	}
	return Default()
}
