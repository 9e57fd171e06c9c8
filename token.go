// File: uci/token.go
package uci

import "fmt"

// TokenItemType identifies the kind of lexeme produced by the lexer.
type TokenItemType int

const (
	TokenError TokenItemType = iota
	TokenEOF
	TokenPackage
	TokenConfig
	TokenOption
	TokenList
	TokenIdent
	TokenString
)

var tokenItemTypeNames = map[TokenItemType]string{
	TokenError:   "Error",
	TokenEOF:     "EOF",
	TokenPackage: "Package",
	TokenConfig:  "Config",
	TokenOption:  "Option",
	TokenList:    "List",
	TokenIdent:   "Ident",
	TokenString:  "String",
}

func (t TokenItemType) String() string {
	if name, ok := tokenItemTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenItemType(%d)", int(t))
}

// TokenItem is a single lexeme cut from the input. For TokenString
// items Value holds the lexeme with the surrounding quotes removed.
type TokenItem struct {
	Type  TokenItemType
	Value string
	Pos   int
}

func (i TokenItem) String() string {
	if i.Type != TokenError && len(i.Value) > 25 {
		return fmt.Sprintf("(%s %q... %d)", i.Type, i.Value[:25], i.Pos)
	}
	return fmt.Sprintf("(%s %q %d)", i.Type, i.Value, i.Pos)
}

// TokenType identifies the kind of grammar token produced by the scanner.
type TokenType int

const (
	TokError TokenType = iota
	TokEOF
	TokPackage
	TokSection
	TokOption
	TokList
)

var tokenTypeNames = map[TokenType]string{
	TokError:   "error",
	TokEOF:     "eof",
	TokPackage: "package",
	TokSection: "config",
	TokOption:  "option",
	TokList:    "list",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a grammar-level token assembled from one or more token
// items: a package name, a section header (type plus optional name),
// or an option/list assignment (name plus value).
type Token struct {
	Type  TokenType
	Items []TokenItem
}

func (t Token) String() string {
	return fmt.Sprintf("%s %v", t.Type, t.Items)
}

// Keywords of the configuration grammar.
const (
	kwPackage = "package"
	kwConfig  = "config"
	kwOption  = "option"
	kwList    = "list"
)
