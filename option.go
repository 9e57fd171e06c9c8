// File: uci/option.go
package uci

// OptionType distinguishes single-value options from lists.
type OptionType int

const (
	ScalarOption OptionType = iota
	ListOption
)

func (t OptionType) String() string {
	switch t {
	case ScalarOption:
		return "option"
	case ListOption:
		return "list"
	}
	return "unknown"
}

// Option is a single key/value(s) assignment within a section. A scalar
// option keeps at most one meaningful value; a list option keeps an
// ordered set of values.
type Option struct {
	Name   string
	Type   OptionType
	Values []string
}

// NewOption returns a new option with the given values.
func NewOption(name string, typ OptionType, values ...string) *Option {
	return &Option{
		Name:   name,
		Type:   typ,
		Values: values,
	}
}

// SetValues replaces the option's values.
func (o *Option) SetValues(values ...string) *Option {
	o.Values = values
	return o
}

// SetType changes the option's type.
func (o *Option) SetType(typ OptionType) *Option {
	o.Type = typ
	return o
}

// MergeValues combines the given values into the option. A scalar
// option is overwritten; a list option appends values not already
// present, preserving order.
func (o *Option) MergeValues(values ...string) *Option {
	if o.Type == ScalarOption {
		return o.SetValues(values...)
	}
	have := make(map[string]struct{}, len(o.Values))
	for _, v := range o.Values {
		have[v] = struct{}{}
	}
	for _, v := range values {
		if _, ok := have[v]; ok {
			continue
		}
		have[v] = struct{}{}
		o.Values = append(o.Values, v)
	}
	return o
}
