// File: uci/scanner.go
package uci

// scanStateFn is one state of the scanner; nil terminates the machine.
type scanStateFn func(*scanner) scanStateFn

// scanner assembles the lexer's token items into grammar tokens. It
// pulls items lazily, with a one-item pushback buffer, and stops at the
// first grammar violation: an error token is always the last token of
// the stream.
type scanner struct {
	lex    *lexer
	state  scanStateFn
	last   *TokenItem // pushback buffer
	curr   []TokenItem
	tokens []Token
	done   bool
}

func newScanner(name, input string) *scanner {
	return &scanner{
		lex:   newLexer(name, input),
		state: scanStart,
	}
}

// next returns the next grammar token; ok is false once the stream is
// exhausted.
func (s *scanner) next() (Token, bool) {
	for {
		if len(s.tokens) > 0 {
			tok := s.tokens[0]
			s.tokens = s.tokens[1:]
			return tok, true
		}
		if s.done || s.state == nil {
			s.done = true
			return Token{Type: TokEOF}, false
		}
		s.state = s.state(s)
	}
}

func (s *scanner) nextItem() TokenItem {
	if s.last != nil {
		it := *s.last
		s.last = nil
		return it
	}
	return s.lex.nextItem()
}

func (s *scanner) peek() TokenItem {
	it := s.nextItem()
	s.backup(it)
	return it
}

func (s *scanner) backup(it TokenItem) {
	s.last = &it
}

// accept consumes the next item if it has the wanted type, collecting
// it into the token under construction.
func (s *scanner) accept(typ TokenItemType) bool {
	it := s.nextItem()
	if it.Type == typ {
		s.curr = append(s.curr, it)
		return true
	}
	s.backup(it)
	return false
}

func (s *scanner) emit(typ TokenType) {
	s.tokens = append(s.tokens, Token{Type: typ, Items: s.curr})
	s.curr = nil
}

// errorf queues a terminal error token.
func (s *scanner) errorf(reason string) scanStateFn {
	s.tokens = append(s.tokens, Token{
		Type:  TokError,
		Items: []TokenItem{{Type: TokenError, Value: reason}},
	})
	return nil
}

func scanStart(s *scanner) scanStateFn {
	it := s.nextItem()
	switch it.Type {
	case TokenPackage:
		return scanPackage
	case TokenConfig:
		return scanSection
	case TokenError:
		return s.errorf(it.Value)
	case TokenEOF:
		return nil
	default:
		return s.errorf("expected package or config token")
	}
}

func scanPackage(s *scanner) scanStateFn {
	it := s.nextItem()
	switch it.Type {
	case TokenString:
		s.curr = append(s.curr, it)
		s.emit(TokPackage)
		return scanStart
	case TokenError:
		return s.errorf(it.Value)
	default:
		return s.errorf("expected string value while parsing package")
	}
}

func scanSection(s *scanner) scanStateFn {
	it := s.nextItem()
	switch it.Type {
	case TokenIdent:
		s.curr = append(s.curr, it)
		if s.peek().Type == TokenString {
			s.accept(TokenString)
		}
		s.emit(TokSection)
		return scanOption
	case TokenError:
		return s.errorf(it.Value)
	default:
		return s.errorf("expected identifier while parsing config section")
	}
}

func scanOption(s *scanner) scanStateFn {
	it := s.nextItem()
	switch it.Type {
	case TokenOption:
		return scanOptionName
	case TokenList:
		return scanListName
	case TokenError:
		return s.errorf(it.Value)
	default:
		s.backup(it)
		return scanStart
	}
}

func scanOptionName(s *scanner) scanStateFn {
	if s.accept(TokenIdent) {
		return scanOptionValue
	}
	return s.errorf("expected option name")
}

func scanListName(s *scanner) scanStateFn {
	if s.accept(TokenIdent) {
		return scanListValue
	}
	return s.errorf("expected option name")
}

func scanOptionValue(s *scanner) scanStateFn {
	it := s.nextItem()
	switch it.Type {
	case TokenString:
		s.curr = append(s.curr, it)
		s.emit(TokOption)
		return scanOption
	case TokenError:
		return s.errorf(it.Value)
	default:
		return s.errorf("expected option value")
	}
}

func scanListValue(s *scanner) scanStateFn {
	it := s.nextItem()
	switch it.Type {
	case TokenString:
		s.curr = append(s.curr, it)
		s.emit(TokList)
		return scanOption
	case TokenError:
		return s.errorf(it.Value)
	default:
		return s.errorf("expected option value")
	}
}
