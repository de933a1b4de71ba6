package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is a candidate unit file found by the Scanner
type Entry struct {
	Name string // file name without the suffix
	Path string
}

// Scanner lists unit files in a single directory
type Scanner struct {
	suffix string
}

// NewScanner creates a new Scanner matching files that end in suffix
func NewScanner(suffix string) *Scanner {
	return &Scanner{suffix: suffix}
}

// Scan lists matching files directly inside root, in directory listing
// order. Subdirectories and hidden files are skipped.
func (s *Scanner) Scan(root string) ([]Entry, error) {
	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scenario path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scenario path is not a directory: %s", root)
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}

	var entries []Entry
	for _, d := range dirEntries {
		name := d.Name()
		if d.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasSuffix(name, s.suffix) {
			continue
		}
		entries = append(entries, Entry{
			Name: strings.TrimSuffix(name, s.suffix),
			Path: filepath.Join(root, name),
		})
	}

	return entries, nil
}
