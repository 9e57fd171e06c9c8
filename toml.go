// File: uci/toml.go
package uci

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
)

// tomlSection is the interchange form of a section: scalar options and
// list options are kept in separate tables.
type tomlSection struct {
	Type    string              `toml:"type"`
	Name    string              `toml:"name,omitempty"`
	Options map[string]string   `toml:"options,omitempty"`
	Lists   map[string][]string `toml:"lists,omitempty"`
}

type tomlConfig struct {
	Package  string        `toml:"package,omitempty"`
	Sections []tomlSection `toml:"section"`
}

// MarshalTOML renders the config as a TOML document, mainly for
// debugging and interchange. Section order is preserved; within a
// section the option tables are keyed by option name.
func (c *Config) MarshalTOML() ([]byte, error) {
	doc := tomlConfig{Package: c.PackageName}
	for _, sec := range c.Sections {
		ts := tomlSection{Type: sec.Type, Name: sec.Name}
		for _, opt := range sec.Options {
			switch opt.Type {
			case ScalarOption:
				if len(opt.Values) == 0 {
					continue
				}
				if ts.Options == nil {
					ts.Options = make(map[string]string)
				}
				ts.Options[opt.Name] = opt.Values[0]
			case ListOption:
				if ts.Lists == nil {
					ts.Lists = make(map[string][]string)
				}
				ts.Lists[opt.Name] = opt.Values
			}
		}
		doc.Sections = append(doc.Sections, ts)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("toml encoding of '%s' failed: %w", c.Name, err)
	}
	return buf.Bytes(), nil
}

// ImportTOML builds a config from a TOML document of the form produced
// by MarshalTOML. Option order within a section is alphabetical, since
// TOML tables carry no order.
func ImportTOML(name string, data []byte) (*Config, error) {
	var doc tomlConfig
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("toml decoding of '%s' failed: %w", name, err)
	}

	cfg := NewConfig(name)
	cfg.PackageName = doc.Package
	for _, ts := range doc.Sections {
		sec := NewSection(ts.Type, ts.Name)
		for _, optName := range sortedKeys(ts.Options) {
			sec.Add(NewOption(optName, ScalarOption, ts.Options[optName]))
		}
		for _, listName := range sortedKeys(ts.Lists) {
			sec.Add(NewOption(listName, ListOption, ts.Lists[listName]...))
		}
		cfg.Add(sec)
	}
	cfg.modified = true
	return cfg, nil
}

// ExportTOML writes a stored config as TOML, loading it on a cache
// miss.
func (t *Tree) ExportTOML(name string, w io.Writer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cfg, err := t.ensureConfigLoaded(name)
	if err != nil {
		return err
	}
	data, err := cfg.MarshalTOML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
