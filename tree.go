// File: uci/tree.go
package uci

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// DefaultTreePath is the conventional location of the config tree.
const DefaultTreePath = "/etc/config"

// Tree is a transactional store over a directory of config files. Reads
// auto-load configs on first access; writes stay in memory until Commit
// persists every modified config. A single mutex serializes all access.
type Tree struct {
	dir      string
	configs  map[string]*Config
	watchers map[string]*watcher

	mu sync.Mutex
}

// NewTree returns a store rooted at dir. An empty dir selects
// DefaultTreePath. The directory is not touched until a config is
// loaded or committed.
func NewTree(dir string) *Tree {
	if dir == "" {
		dir = DefaultTreePath
	}
	return &Tree{
		dir:      dir,
		configs:  make(map[string]*Config),
		watchers: make(map[string]*watcher),
	}
}

// LoadConfig reads and parses the named config file into the store.
// A cached config is only replaced when forceReload is set; otherwise
// ErrConfigAlreadyLoaded is returned.
func (t *Tree) LoadConfig(name string, forceReload bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.configs[name]; ok && !forceReload {
		return fmt.Errorf("%s %w", name, ErrConfigAlreadyLoaded)
	}
	return t.loadConfig(name)
}

// loadConfig reads, parses and caches a config. Callers hold t.mu.
func (t *Tree) loadConfig(name string) error {
	path := filepath.Join(t.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file '%s' failed: %w", path, err)
	}
	cfg, err := Parse(name, string(data))
	if err != nil {
		return err
	}
	t.configs[name] = cfg
	return nil
}

// ensureConfigLoaded returns the cached config, loading it on a miss.
// Callers hold t.mu.
func (t *Tree) ensureConfigLoaded(name string) (*Config, error) {
	if cfg, ok := t.configs[name]; ok {
		return cfg, nil
	}
	if err := t.loadConfig(name); err != nil {
		return nil, err
	}
	return t.configs[name], nil
}

// Commit persists every modified config to disk. Each config is written
// atomically; the first failure aborts the commit, leaving configs
// already written in place.
func (t *Tree) Commit() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, cfg := range t.configs {
		if !cfg.modified {
			continue
		}
		if err := t.saveConfig(cfg); err != nil {
			return fmt.Errorf("saving %s failed: %w", cfg.Name, err)
		}
		cfg.modified = false
	}
	return nil
}

// Revert drops the named configs from the store, discarding any
// uncommitted changes. With no names, every config is dropped.
func (t *Tree) Revert(names ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(names) == 0 {
		t.configs = make(map[string]*Config)
		return
	}
	for _, name := range names {
		delete(t.configs, name)
	}
}

// GetSections returns the canonical names of every section of the given
// type, in file order.
func (t *Tree) GetSections(config, secType string) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cfg, err := t.ensureConfigLoaded(config)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, sec := range cfg.Sections {
		if sec.Type == secType {
			names = append(names, cfg.SectionName(sec))
		}
	}
	return names, nil
}

// GetAllSections returns every section of the config as (type, name)
// pairs in file order, with canonical names.
func (t *Tree) GetAllSections(config string) ([][2]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cfg, err := t.ensureConfigLoaded(config)
	if err != nil {
		return nil, err
	}
	pairs := make([][2]string, 0, len(cfg.Sections))
	for _, sec := range cfg.Sections {
		pairs = append(pairs, [2]string{sec.Type, cfg.SectionName(sec)})
	}
	return pairs, nil
}

// Get returns every value of an option. The section may be addressed by
// name or positional selector.
func (t *Tree) Get(config, section, option string) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	opt, err := t.lookupOption(config, section, option)
	if err != nil {
		return nil, err
	}
	return opt.Values, nil
}

// GetLast returns the last value of an option.
func (t *Tree) GetLast(config, section, option string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	opt, err := t.lookupOption(config, section, option)
	if err != nil {
		return "", err
	}
	if len(opt.Values) == 0 {
		return "", nil
	}
	return opt.Values[len(opt.Values)-1], nil
}

// GetFirst returns the first value of an option.
func (t *Tree) GetFirst(config, section, option string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	opt, err := t.lookupOption(config, section, option)
	if err != nil {
		return "", err
	}
	if len(opt.Values) == 0 {
		return "", nil
	}
	return opt.Values[0], nil
}

// GetBool returns the last value of an option interpreted as a boolean,
// per IsBoolValue.
func (t *Tree) GetBool(config, section, option string) (bool, error) {
	v, err := t.GetLast(config, section, option)
	if err != nil {
		return false, err
	}
	return IsBoolValue(v), nil
}

// GetAllOptions returns the section's options in order.
func (t *Tree) GetAllOptions(config, section string) ([]*Option, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	sec, err := t.lookupSection(config, section)
	if err != nil {
		return nil, err
	}
	return sec.Options, nil
}

// Set assigns values to an option, creating it if needed. More than one
// value makes a list, exactly one a scalar; an existing option has its
// type and values overwritten. At least one value is required.
func (t *Tree) Set(config, section, option string, values ...string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(values) == 0 {
		return fmt.Errorf("setting %s.%s.%s: at least one value required", config, section, option)
	}
	cfg, err := t.ensureConfigLoaded(config)
	if err != nil {
		return err
	}
	sec, err := cfg.Get(section)
	if err != nil {
		return err
	}
	if sec == nil {
		return fmt.Errorf("%s.%s: %w", config, section, ErrSectionNotFound)
	}
	typ := ScalarOption
	if len(values) > 1 {
		typ = ListOption
	}
	if opt := sec.Get(option); opt != nil {
		opt.SetType(typ).SetValues(values...)
	} else {
		sec.Add(NewOption(option, typ, values...))
	}
	cfg.modified = true
	return nil
}

// Del removes an option from a section. Missing sections and options
// are ignored.
func (t *Tree) Del(config, section, option string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cfg, err := t.ensureConfigLoaded(config)
	if err != nil {
		return err
	}
	sec, err := cfg.Get(section)
	if err != nil {
		return err
	}
	if sec == nil {
		return nil
	}
	if sec.Del(option) {
		cfg.modified = true
	}
	return nil
}

// AddSection ensures a section of the given type exists. A missing
// config file is created in memory. An existing section of a different
// type is replaced; one of the same type is left alone. An empty
// section name adds an anonymous section.
func (t *Tree) AddSection(config, section, secType string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cfg, err := t.ensureConfigLoaded(config)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		cfg = NewConfig(config)
		cfg.modified = true
		t.configs[config] = cfg
	}
	if section == "" {
		cfg.Add(NewSection(secType, ""))
		cfg.modified = true
		return nil
	}
	sec, err := cfg.Get(section)
	if err != nil {
		return err
	}
	if sec != nil {
		if sec.Type == secType {
			return nil
		}
		cfg.Del(section)
	}
	cfg.Add(NewSection(secType, section))
	cfg.modified = true
	return nil
}

// DelSection removes a section from a config. Missing sections are
// ignored.
func (t *Tree) DelSection(config, section string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cfg, err := t.ensureConfigLoaded(config)
	if err != nil {
		return err
	}
	cfg.Del(section)
	cfg.modified = true
	return nil
}

// DelAllSections removes every section of the given type.
func (t *Tree) DelAllSections(config, secType string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cfg, err := t.ensureConfigLoaded(config)
	if err != nil {
		return err
	}
	cfg.DelAll(secType)
	cfg.modified = true
	return nil
}

// FirstSection returns the canonical name of the first section of a
// type.
func (t *Tree) FirstSection(config, secType string) (string, error) {
	names, err := t.GetSections(config, secType)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%s.@%s: %w", config, secType, ErrSectionNotFound)
	}
	return names[0], nil
}

// LastSection returns the canonical name of the last section of a type.
func (t *Tree) LastSection(config, secType string) (string, error) {
	names, err := t.GetSections(config, secType)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%s.@%s: %w", config, secType, ErrSectionNotFound)
	}
	return names[len(names)-1], nil
}

// ForEach visits every section of a type in file order.
func (t *Tree) ForEach(config, secType string, fn func(*Section)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cfg, err := t.ensureConfigLoaded(config)
	if err != nil {
		return err
	}
	for _, sec := range cfg.Sections {
		if sec.Type == secType {
			fn(sec)
		}
	}
	return nil
}

// lookupSection resolves a section, translating a named miss into
// ErrSectionNotFound. Callers hold t.mu.
func (t *Tree) lookupSection(config, section string) (*Section, error) {
	cfg, err := t.ensureConfigLoaded(config)
	if err != nil {
		return nil, err
	}
	sec, err := cfg.Get(section)
	if err != nil {
		return nil, err
	}
	if sec == nil {
		return nil, fmt.Errorf("%s.%s: %w", config, section, ErrSectionNotFound)
	}
	return sec, nil
}

// lookupOption resolves an option within a section. Callers hold t.mu.
func (t *Tree) lookupOption(config, section, option string) (*Option, error) {
	sec, err := t.lookupSection(config, section)
	if err != nil {
		return nil, err
	}
	opt := sec.Get(option)
	if opt == nil {
		return nil, fmt.Errorf("%s.%s: %w", section, option, ErrOptionNotFound)
	}
	return opt, nil
}

// IsBoolValue reports whether a config value reads as true. The
// recognized true spellings are "1", "on", "true", "yes" and "enabled";
// everything else is false.
func IsBoolValue(s string) bool {
	switch s {
	case "1", "on", "true", "yes", "enabled":
		return true
	}
	return false
}
