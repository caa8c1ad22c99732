package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IsSRTFile reports whether path has an .srt extension (any case).
func IsSRTFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".srt")
}

// Discover lists the SRT inputs for source. A directory yields its .srt
// files (non-recursive) sorted by name; a regular file is returned as is.
func Discover(source string) ([]string, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("source not found: %w", err)
	}
	if !info.IsDir() {
		return []string{source}, nil
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", source, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsSRTFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(source, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
