package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const defaultGeneralList = "general"

// ListRef registers a list that lives outside the main dir.
type ListRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Config is the persisted tool configuration. The core document code never
// reads it; commands resolve a list file path up front and hand only that
// path down.
type Config struct {
	// MainDir is where named lists live as "<name>.md".
	MainDir string `json:"mainDir"`

	// GeneralList is the fallback list used when no list is specified and
	// none is discovered in the current directory.
	GeneralList string `json:"generalList,omitempty"`

	// Lists registers out-of-tree lists by name. Entries here take precedence
	// over "<mainDir>/<name>.md".
	Lists []ListRef `json:"lists,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.todo).
	if v := strings.TrimSpace(os.Getenv("TODO_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".todo"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DefaultConfig returns the configuration `todo init` writes on first run.
func DefaultConfig() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		MainDir:     filepath.Join(dir, "lists"),
		GeneralList: defaultGeneralList,
	}, nil
}

// LoadConfig reads the global config, falling back to defaults when the file
// does not exist yet so read-only commands work before `todo init`.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig()
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if strings.TrimSpace(cfg.GeneralList) == "" {
		cfg.GeneralList = defaultGeneralList
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Best-effort safety net: keep the previous config around so recovery from
	// an accidental overwrite is easy. Ignore errors.
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}

	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

// ListPath resolves a list name to its file path: the registry wins, then
// "<mainDir>/<name>.md".
func (c *Config) ListPath(name string) string {
	name = strings.TrimSpace(name)
	for _, l := range c.Lists {
		if l.Name == name {
			return l.Path
		}
	}
	return filepath.Join(c.MainDir, name+".md")
}

// AddList registers an out-of-tree list. The name must not collide with an
// existing registry entry.
func (c *Config) AddList(name, path string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("list name is empty")
	}
	for _, l := range c.Lists {
		if l.Name == name {
			return fmt.Errorf("list already registered: %s", name)
		}
	}
	c.Lists = append(c.Lists, ListRef{Name: name, Path: filepath.Clean(path)})
	return nil
}

// ExistingLists returns all known lists: the registry union the "*.md" files
// in the main dir, sorted by name. Registry entries win on name collisions.
func (c *Config) ExistingLists() ([]ListRef, error) {
	byName := map[string]ListRef{}

	ents, err := os.ReadDir(c.MainDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read main dir: %w", err)
	}
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".md")
		byName[name] = ListRef{Name: name, Path: filepath.Join(c.MainDir, e.Name())}
	}
	for _, l := range c.Lists {
		byName[l.Name] = l
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]ListRef, 0, len(names))
	for _, name := range names {
		out = append(out, byName[name])
	}
	return out, nil
}
