// File: uci/lexer.go
package uci

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// lexStateFn is one state of the lexer. It consumes input, may queue
// token items, and returns the next state; nil terminates the machine.
type lexStateFn func(*lexer) lexStateFn

// lexer cuts an input string into a lazy sequence of token items. It is
// the character-level half of the parsing pipeline: it knows about
// keywords, whitespace, comments and quoting, but not about grammar.
//
// The sequence ends with exactly one EOF or one Error item; after
// either, nextItem keeps returning EOF items.
type lexer struct {
	name  string // config name, used in error messages only
	input string
	start int // start of the pending lexeme
	pos   int // current read position
	width int // width of the last rune read, for backup
	state lexStateFn
	items []TokenItem
	done  bool
}

func newLexer(name, input string) *lexer {
	return &lexer{
		name:  name,
		input: input,
		state: lexKeyWord,
	}
}

// nextItem advances the state machine until an item is available.
func (l *lexer) nextItem() TokenItem {
	for {
		if len(l.items) > 0 {
			it := l.items[0]
			l.items = l.items[1:]
			return it
		}
		if l.done || l.state == nil {
			return l.stop()
		}
		l.state = l.state(l)
	}
}

// stop drains the queue and pins the lexer to its terminal state.
func (l *lexer) stop() TokenItem {
	l.done = true
	if len(l.items) > 0 {
		it := l.items[0]
		l.items = nil
		return it
	}
	return l.eof()
}

func (l *lexer) eof() TokenItem {
	return TokenItem{Type: TokenEOF, Value: l.input[l.start:l.pos], Pos: l.pos}
}

func (l *lexer) nextRune() (rune, bool) {
	if l.pos >= len(l.input) {
		l.width = 0
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r, true
}

// backup steps back over the last rune read. Only valid once per
// nextRune call.
func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) ignore() {
	l.start = l.pos
}

func (l *lexer) peek() (rune, bool) {
	r, ok := l.nextRune()
	l.backup()
	return r, ok
}

func (l *lexer) rest() string {
	return l.input[l.pos:]
}

func (l *lexer) emit(typ TokenItemType) {
	if l.pos > l.start {
		l.items = append(l.items, TokenItem{
			Type:  typ,
			Value: l.input[l.start:l.pos],
			Pos:   l.pos,
		})
		l.start = l.pos
	}
}

// emitString emits the pending lexeme with its surrounding quotes
// stripped.
func (l *lexer) emitString(typ TokenItemType) {
	if l.pos > l.start+1 {
		l.items = append(l.items, TokenItem{
			Type:  typ,
			Value: l.input[l.start+1 : l.pos-1],
			Pos:   l.pos,
		})
		l.start = l.pos
	}
}

// errorf queues an error item and terminates the machine. All lexer
// errors carry the "config: <name>, <reason>" format.
func (l *lexer) errorf(reason string) lexStateFn {
	l.items = append(l.items, TokenItem{
		Type:  TokenError,
		Value: fmt.Sprintf("config: %s, %s", l.name, reason),
		Pos:   l.pos,
	})
	return nil
}

// acceptComment consumes a "#" comment up to, but not including, the
// terminating newline.
func (l *lexer) acceptComment() {
	if r, ok := l.nextRune(); ok && r == '#' {
		for {
			r, ok := l.nextRune()
			if !ok || r == '\n' {
				break
			}
		}
	}
	l.backup()
}

// consumeNowrapWhitespace discards spaces and tabs, stopping at
// newlines.
func (l *lexer) consumeNowrapWhitespace() {
	for {
		r, ok := l.peek()
		if !ok || (r != ' ' && r != '\t') {
			break
		}
		l.nextRune()
	}
	l.ignore()
}

// consumeWhitespace discards any whitespace, including newlines.
func (l *lexer) consumeWhitespace() {
	for {
		r, ok := l.peek()
		if !ok || !unicode.IsSpace(r) {
			break
		}
		l.nextRune()
	}
	l.ignore()
}

func isIdentRune(r rune) bool {
	return r == '-' || r == '_' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}

// acceptIdent consumes a run of identifier runes.
func (l *lexer) acceptIdent() {
	for {
		r, ok := l.nextRune()
		if !ok {
			return
		}
		if !isIdentRune(r) {
			l.backup()
			return
		}
	}
}

// acceptOnce consumes the next rune if it is contained in valid.
func (l *lexer) acceptOnce(valid string) bool {
	r, ok := l.nextRune()
	if ok && strings.ContainsRune(valid, r) {
		return true
	}
	l.backup()
	return false
}

// lexKeyWord is the start state: it dispatches on the next keyword or
// comment, and terminates the machine at end of input.
func lexKeyWord(l *lexer) lexStateFn {
	l.consumeWhitespace()
	rest := l.rest()
	switch {
	case strings.HasPrefix(rest, "#"):
		return lexComment
	case strings.HasPrefix(rest, kwPackage):
		return lexPackage
	case strings.HasPrefix(rest, kwConfig):
		return lexConfig
	case strings.HasPrefix(rest, kwOption):
		return lexOption
	case strings.HasPrefix(rest, kwList):
		return lexList
	}
	if _, ok := l.nextRune(); !ok {
		l.emit(TokenEOF)
		return nil
	}
	return l.errorf("expected keyword (package, config, option, list) or eof")
}

func lexComment(l *lexer) lexStateFn {
	l.acceptComment()
	l.ignore()
	return lexKeyWord
}

func lexPackage(l *lexer) lexStateFn {
	l.pos += len(kwPackage)
	l.emit(TokenPackage)
	return lexPackageName
}

func lexPackageName(l *lexer) lexStateFn {
	for {
		r, ok := l.nextRune()
		switch {
		case !ok || r == '\n':
			return l.errorf("incomplete package name")
		case r == '\'' || r == '"':
			l.backup()
			return lexQuoted
		case unicode.IsSpace(r):
			l.ignore()
		}
	}
}

func lexConfig(l *lexer) lexStateFn {
	l.pos += len(kwConfig)
	l.emit(TokenConfig)
	l.consumeNowrapWhitespace()
	return lexConfigType
}

func lexConfigType(l *lexer) lexStateFn {
	l.acceptIdent()
	l.emit(TokenIdent)
	l.consumeNowrapWhitespace()
	return lexOptionalName
}

// lexOptionalName handles the section name, which may be quoted, bare,
// or absent entirely.
func lexOptionalName(l *lexer) lexStateFn {
	r, ok := l.nextRune()
	switch {
	case !ok:
		// nothing left; an anonymous section at end of input
	case r == '\n':
		l.ignore()
	case r == '"' || r == '\'':
		l.backup()
		return lexQuoted
	default:
		l.acceptIdent()
		l.emit(TokenString)
	}
	return lexKeyWord
}

func lexOption(l *lexer) lexStateFn {
	l.pos += len(kwOption)
	l.emit(TokenOption)
	l.consumeNowrapWhitespace()
	return lexOptionName
}

func lexList(l *lexer) lexStateFn {
	l.pos += len(kwList)
	l.emit(TokenList)
	l.consumeNowrapWhitespace()
	return lexOptionName
}

func lexOptionName(l *lexer) lexStateFn {
	l.acceptIdent()
	l.emit(TokenIdent)
	l.consumeNowrapWhitespace()
	return lexValue
}

func lexValue(l *lexer) lexStateFn {
	if r, ok := l.peek(); ok && (r == '"' || r == '\'') {
		return lexQuoted
	}
	return lexUnquoted
}

// lexQuoted consumes a single- or double-quoted string. A backslash
// escapes the following rune, including quotes and newlines; a bare
// newline or end of input inside the string is an error.
func lexQuoted(l *lexer) lexStateFn {
	q, ok := l.nextRune()
	if !ok {
		return nil
	}
	if q != '"' && q != '\'' {
		return l.errorf("expected quotation")
	}
loop:
	for {
		r, ok := l.nextRune()
		switch {
		case !ok:
			return l.errorf("unterminated quoted string")
		case r == '\\':
			if _, ok := l.nextRune(); !ok {
				return l.errorf("unterminated quoted string")
			}
		case r == '\n':
			return l.errorf("unterminated quoted string")
		case r == q:
			break loop
		}
	}
	l.emitString(TokenString)
	l.consumeNowrapWhitespace()
	return lexKeyWord
}

// lexUnquoted consumes a bare value, terminated by whitespace, a
// comment, or a newline.
func lexUnquoted(l *lexer) lexStateFn {
loop:
	for {
		r, ok := l.nextRune()
		switch {
		case !ok:
			return l.errorf("unterminated unquoted string")
		case r == '\\':
			if _, ok := l.nextRune(); !ok {
				return l.errorf("unterminated unquoted string")
			}
		case r == ' ' || r == '\t' || r == '#' || r == '\n':
			break loop
		}
	}
	l.backup()
	l.emit(TokenString)
	l.consumeNowrapWhitespace()
	l.acceptOnce("\n")
	l.ignore()
	return lexKeyWord
}
