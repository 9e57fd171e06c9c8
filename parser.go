// File: uci/parser.go
package uci

import "fmt"

// Parse builds a configuration tree from input, applying the section
// merge rules: a named section that resolves to the same canonical name
// as an earlier one is merged into it, anonymous sections are always
// appended. A package statement sets the config's package name.
//
// Any lexer or scanner error aborts the parse; no partial tree is
// returned.
func Parse(name, input string) (*Config, error) {
	s := newScanner(name, input)
	cfg := NewConfig(name)

	var sec *Section
	flush := func() {
		if sec == nil {
			return
		}
		if sec.Type != "" && sec.Name != "" {
			cfg.Merge(sec)
		} else {
			cfg.Add(sec)
		}
		sec = nil
	}

	for {
		tok, ok := s.next()
		if !ok {
			break
		}
		switch tok.Type {
		case TokError:
			return nil, fmt.Errorf("parse error: %s", tok.Items[0].Value)
		case TokPackage:
			cfg.PackageName = tok.Items[0].Value
		case TokSection:
			flush()
			if len(tok.Items) == 2 {
				sec = NewSection(tok.Items[0].Value, tok.Items[1].Value)
			} else {
				sec = NewSection(tok.Items[0].Value, "")
			}
		case TokOption:
			if sec != nil {
				sec.Merge(NewOption(tok.Items[0].Value, ScalarOption, tok.Items[1].Value))
			}
		case TokList:
			if sec != nil {
				sec.Merge(NewOption(tok.Items[0].Value, ListOption, tok.Items[1].Value))
			}
		}
	}
	flush()

	return cfg, nil
}
