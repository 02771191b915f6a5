package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lixenwraith/particlekit"
)

// Discover scans a directory for preset files: non-hidden regular files
// with a .toml extension, returned sorted by name. A missing directory
// is not an error, just no files.
func Discover(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		particlekit.Logger().Debug("preset directory does not exist", "dir", dir)
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("preset: read dir %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if strings.HasSuffix(name, ".toml") {
			files = append(files, filepath.Join(dir, name))
		}
	}

	sort.Strings(files)
	return files, nil
}

// LoadDir discovers and loads every preset file in a directory.
func LoadDir(dir string) ([]Preset, error) {
	files, err := Discover(dir)
	if err != nil {
		return nil, err
	}

	var all []Preset
	for _, path := range files {
		presets, err := Load(path)
		if err != nil {
			return nil, err
		}
		all = append(all, presets...)
	}
	return all, nil
}
