package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"todo-cli/internal/doc"
	"todo-cli/internal/model"
)

// DiscoveryFileName is the per-project list file picked up from the current
// directory (or an ancestor) when no list is named.
const DiscoveryFileName = "TODO.md"

// DiscoverFile walks up from start looking for a TODO.md.
func DiscoverFile(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, DiscoveryFileName)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ResolveListPath picks the list file for a command invocation:
//  1. an explicitly named list (--list)
//  2. a TODO.md discovered from the working directory upwards
//  3. the configured general list
//
// The returned source tag ("named", "discovered", "general") is for logging
// and command output.
func ResolveListPath(cfg *Config, name, cwd string) (path, source string) {
	if n := strings.TrimSpace(name); n != "" {
		return cfg.ListPath(n), "named"
	}
	if found, ok := DiscoverFile(cwd); ok {
		return found, "discovered"
	}
	return cfg.ListPath(cfg.GeneralList), "general"
}

// LoadDocument parses the list file at path. A missing file is the empty
// document, so the first `todo add` against a fresh list just works; parsing
// itself is total and never fails.
func LoadDocument(path string) (*model.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc.Parse(""), nil
		}
		return nil, fmt.Errorf("read list %s: %w", path, err)
	}
	return doc.Parse(string(b)), nil
}

// SaveDocument renders the document and replaces the file at path in one
// atomic rename, so a failed write never leaves a half-written list behind.
func SaveDocument(path string, d *model.Document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create list dir %s: %w", dir, err)
	}
	if err := atomicWriteFile(dir, filepath.Base(path)+".*.tmp", path, []byte(doc.Render(d)), 0o644); err != nil {
		return fmt.Errorf("write list %s: %w", path, err)
	}
	return nil
}
