// File: uci/scanner_test.go
package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTokens(t *testing.T, name, input string) []Token {
	t.Helper()
	s := newScanner(name, input)
	var tokens []Token
	for {
		tok, ok := s.next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestScanner(t *testing.T) {
	t.Run("section with options", func(t *testing.T) {
		tokens := collectTokens(t, "net", "config interface 'lan'\n\toption proto 'static'\n\tlist dns '8.8.8.8'\n")
		require.Len(t, tokens, 3)

		assert.Equal(t, TokSection, tokens[0].Type)
		require.Len(t, tokens[0].Items, 2)
		assert.Equal(t, "interface", tokens[0].Items[0].Value)
		assert.Equal(t, "lan", tokens[0].Items[1].Value)

		assert.Equal(t, TokOption, tokens[1].Type)
		require.Len(t, tokens[1].Items, 2)
		assert.Equal(t, "proto", tokens[1].Items[0].Value)
		assert.Equal(t, "static", tokens[1].Items[1].Value)

		assert.Equal(t, TokList, tokens[2].Type)
		require.Len(t, tokens[2].Items, 2)
		assert.Equal(t, "dns", tokens[2].Items[0].Value)
		assert.Equal(t, "8.8.8.8", tokens[2].Items[1].Value)
	})

	t.Run("anonymous section", func(t *testing.T) {
		tokens := collectTokens(t, "net", "config globals\n\toption ula_prefix 'fd00::/48'\n")
		require.Len(t, tokens, 2)
		assert.Equal(t, TokSection, tokens[0].Type)
		require.Len(t, tokens[0].Items, 1)
		assert.Equal(t, "globals", tokens[0].Items[0].Value)
	})

	t.Run("package statement", func(t *testing.T) {
		tokens := collectTokens(t, "net", "package 'mypkg'\nconfig foo\n")
		require.Len(t, tokens, 2)
		assert.Equal(t, TokPackage, tokens[0].Type)
		require.Len(t, tokens[0].Items, 1)
		assert.Equal(t, "mypkg", tokens[0].Items[0].Value)
		assert.Equal(t, TokSection, tokens[1].Type)
	})

	t.Run("consecutive sections", func(t *testing.T) {
		tokens := collectTokens(t, "net", "config foo 'a'\nconfig bar 'b'\n")
		require.Len(t, tokens, 2)
		assert.Equal(t, TokSection, tokens[0].Type)
		assert.Equal(t, TokSection, tokens[1].Type)
	})
}

func TestScannerErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "option before config",
			input: "option foo 'bar'\n",
			want:  "expected package or config token",
		},
		{
			name:  "lexer error passes through",
			input: "<?xml version=\"1.0\">\n",
			want:  "config: lexer error passes through, expected keyword (package, config, option, list) or eof",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := collectTokens(t, tc.name, tc.input)
			require.NotEmpty(t, tokens)
			last := tokens[len(tokens)-1]
			require.Equal(t, TokError, last.Type)
			assert.Equal(t, tc.want, last.Items[0].Value)
		})
	}
}

func TestScannerStopsAfterError(t *testing.T) {
	s := newScanner("err", "option foo 'bar'\n")
	tok, ok := s.next()
	require.True(t, ok)
	assert.Equal(t, TokError, tok.Type)

	_, ok = s.next()
	assert.False(t, ok)
}
