// File: uci/section.go
package uci

// Section is a typed, optionally named group of options. Options keep
// their insertion order and are unique by name.
type Section struct {
	Type    string
	Name    string
	Options []*Option
}

// NewSection returns a new section. An empty name makes the section
// anonymous; it is then addressed positionally.
func NewSection(typ, name string) *Section {
	return &Section{Type: typ, Name: name}
}

// Add appends an option to the section. It does not check for an
// existing option of the same name; use Merge for that.
func (s *Section) Add(opt *Option) {
	s.Options = append(s.Options, opt)
}

// Merge combines an option into the section. An existing option of the
// same name and type has the new values merged into it; one of a
// different type has its type and values overwritten. Unknown names are
// appended.
func (s *Section) Merge(opt *Option) *Option {
	for _, o := range s.Options {
		if o.Name != opt.Name {
			continue
		}
		if o.Type == opt.Type {
			return o.MergeValues(opt.Values...)
		}
		return o.SetType(opt.Type).SetValues(opt.Values...)
	}
	s.Add(opt)
	return opt
}

// Del removes the named option, reporting whether it was present.
func (s *Section) Del(name string) bool {
	for i, o := range s.Options {
		if o.Name == name {
			s.Options = append(s.Options[:i], s.Options[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the named option, or nil if the section has none.
func (s *Section) Get(name string) *Option {
	for _, o := range s.Options {
		if o.Name == name {
			return o
		}
	}
	return nil
}
