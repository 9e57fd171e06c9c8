// File: uci/config.go
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Config is a parsed configuration file: an ordered list of sections
// plus an optional package name. The modified flag tracks unpersisted
// changes and is maintained by the Tree.
type Config struct {
	Name        string
	PackageName string
	Sections    []*Section

	modified bool
}

// NewConfig returns a new empty config with the given name.
func NewConfig(name string) *Config {
	return &Config{Name: name}
}

// Get returns the section addressed by name. Names starting with "@"
// are positional selectors of the form "@type[index]"; a negative index
// counts from the end. A failed named lookup returns (nil, nil), a
// malformed selector or out of range index returns an error.
func (c *Config) Get(name string) (*Section, error) {
	if strings.HasPrefix(name, "@") {
		return c.getUnnamed(name)
	}
	for _, sec := range c.Sections {
		if sec.Name == name {
			return sec, nil
		}
	}
	return nil, nil
}

func (c *Config) getUnnamed(selector string) (*Section, error) {
	secType, index, err := unmangleSectionName(selector)
	if err != nil {
		return nil, err
	}
	count := c.count(secType)
	if index < 0 {
		index = count + index
	}
	if index < 0 || index >= count {
		return nil, ErrIndexOutOfBounds
	}
	i := 0
	for _, sec := range c.Sections {
		if sec.Type != secType {
			continue
		}
		if i == index {
			return sec, nil
		}
		i++
	}
	return nil, ErrIndexOutOfBounds
}

// unmangleSectionName validates and splits a positional section
// selector "@type[index]" into its type and index.
func unmangleSectionName(s string) (string, int, error) {
	if len(s) < 5 {
		return "", 0, fmt.Errorf("implausible section selector: must be at least 5 characters long")
	}
	if s[0] != '@' {
		return "", 0, fmt.Errorf("invalid syntax: section selector must start with @ sign")
	}
	bra, ket := 0, len(s)-1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '@':
			if i != 0 {
				return "", 0, fmt.Errorf("invalid syntax: multiple @ signs found")
			}
		case '[':
			if bra > 0 {
				return "", 0, fmt.Errorf("invalid syntax: multiple open brackets found")
			}
			bra = i
		case ']':
			if i != ket {
				return "", 0, fmt.Errorf("invalid syntax: multiple closed brackets found")
			}
		}
	}
	if bra == 0 || bra >= ket {
		return "", 0, fmt.Errorf("invalid syntax: section selector must have format '@type[index]'")
	}
	index, err := strconv.Atoi(s[bra+1 : ket])
	if err != nil {
		return "", 0, fmt.Errorf("invalid syntax: index must be numeric: %v", err)
	}
	return s[1:bra], index, nil
}

// SectionName returns the canonical name of a section within the
// config: the section's own name if it has one, otherwise a positional
// selector derived from its index among sections of the same type.
func (c *Config) SectionName(sec *Section) string {
	if sec.Name != "" {
		return sec.Name
	}
	return fmt.Sprintf("@%s[%d]", sec.Type, c.index(sec))
}

// index returns the position of sec among the config's sections of the
// same type, or -1 if sec is not part of the config.
func (c *Config) index(sec *Section) int {
	i := 0
	for _, s := range c.Sections {
		if s.Type != sec.Type {
			continue
		}
		if s == sec {
			return i
		}
		i++
	}
	return -1
}

func (c *Config) count(secType string) int {
	n := 0
	for _, sec := range c.Sections {
		if sec.Type == secType {
			n++
		}
	}
	return n
}

// Add appends a section to the config and returns it.
func (c *Config) Add(sec *Section) *Section {
	c.Sections = append(c.Sections, sec)
	return sec
}

// Merge combines a named section into an existing section of the same
// canonical name, merging each option. Anonymous sections and unknown
// names are appended.
func (c *Config) Merge(sec *Section) *Section {
	if sec.Name != "" {
		for _, existing := range c.Sections {
			if c.SectionName(existing) != sec.Name {
				continue
			}
			for _, opt := range sec.Options {
				existing.Merge(opt)
			}
			return existing
		}
	}
	return c.Add(sec)
}

// Del removes the section whose canonical name equals name. A
// positional selector only matches an anonymous section at that
// position; missing names are ignored.
func (c *Config) Del(name string) {
	for i, sec := range c.Sections {
		if c.SectionName(sec) == name {
			c.Sections = append(c.Sections[:i], c.Sections[i+1:]...)
			return
		}
	}
}

// DelAll removes every section of the given type.
func (c *Config) DelAll(secType string) {
	kept := c.Sections[:0]
	for _, sec := range c.Sections {
		if sec.Type != secType {
			kept = append(kept, sec)
		}
	}
	c.Sections = kept
}

// Write renders the config in its on-disk format. Values are always
// single-quoted; each block is preceded by a blank line and the output
// ends with one.
func (c *Config) Write(w io.Writer) error {
	buf := bufio.NewWriter(w)
	if c.PackageName != "" {
		fmt.Fprintf(buf, "\npackage '%s'\n", c.PackageName)
	}
	for _, sec := range c.Sections {
		if sec.Name != "" {
			fmt.Fprintf(buf, "\nconfig %s '%s'\n", sec.Type, sec.Name)
		} else {
			fmt.Fprintf(buf, "\nconfig %s\n", sec.Type)
		}
		for _, opt := range sec.Options {
			switch opt.Type {
			case ScalarOption:
				if len(opt.Values) == 0 {
					continue
				}
				fmt.Fprintf(buf, "\toption %s '%s'\n", opt.Name, opt.Values[0])
			case ListOption:
				for _, v := range opt.Values {
					fmt.Fprintf(buf, "\tlist %s '%s'\n", opt.Name, v)
				}
			}
		}
	}
	fmt.Fprint(buf, "\n")
	return buf.Flush()
}
