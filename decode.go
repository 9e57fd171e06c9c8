// File: uci/decode.go
package uci

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the section's options into a target struct. Fields are
// matched via the "uci" tag (falling back to the field name); scalar
// options decode from their single value, list options from the value
// slice. Weakly typed conversion applies, so numeric and boolean fields
// decode from their string spellings.
func (s *Section) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	values := make(map[string]any, len(s.Options))
	for _, opt := range s.Options {
		switch opt.Type {
		case ScalarOption:
			if len(opt.Values) > 0 {
				values[opt.Name] = opt.Values[0]
			}
		case ListOption:
			values[opt.Name] = opt.Values
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "uci",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("decode failed for section '%s': %w", s.Type, err)
	}
	return nil
}

// ScanSection decodes a section of a stored config into a target
// struct, loading the config on a cache miss.
func (t *Tree) ScanSection(config, section string, target any) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	sec, err := t.lookupSection(config, section)
	if err != nil {
		return err
	}
	return sec.Scan(target)
}
