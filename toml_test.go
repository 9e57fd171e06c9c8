// File: uci/toml_test.go
package uci

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigMarshalTOML(t *testing.T) {
	cfg, err := Parse("network", "package 'net'\n\nconfig interface 'lan'\n"+
		"\toption proto 'static'\n"+
		"\tlist dns '8.8.8.8'\n"+
		"\nconfig globals\n"+
		"\toption ula_prefix 'fd00::/48'\n")
	require.NoError(t, err)

	data, err := cfg.MarshalTOML()
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `package = "net"`)
	assert.Contains(t, out, `type = "interface"`)
	assert.Contains(t, out, `name = "lan"`)
	assert.Contains(t, out, `proto = "static"`)
	assert.Contains(t, out, `dns = ["8.8.8.8"]`)
}

func TestImportTOMLRoundTrip(t *testing.T) {
	cfg, err := Parse("network", "config interface 'lan'\n"+
		"\toption proto 'static'\n"+
		"\tlist dns '8.8.8.8'\n"+
		"\tlist dns '8.8.4.4'\n"+
		"\nconfig globals\n"+
		"\toption ula_prefix 'fd00::/48'\n")
	require.NoError(t, err)

	data, err := cfg.MarshalTOML()
	require.NoError(t, err)

	back, err := ImportTOML("network", data)
	require.NoError(t, err)
	require.Len(t, back.Sections, 2)

	lan, err := back.Get("lan")
	require.NoError(t, err)
	require.NotNil(t, lan)
	assert.Equal(t, "interface", lan.Type)
	assert.Equal(t, []string{"static"}, lan.Get("proto").Values)
	assert.Equal(t, []string{"8.8.8.8", "8.8.4.4"}, lan.Get("dns").Values)

	anon, err := back.Get("@globals[0]")
	require.NoError(t, err)
	require.NotNil(t, anon)
	assert.Equal(t, []string{"fd00::/48"}, anon.Get("ula_prefix").Values)
}

func TestImportTOMLInvalid(t *testing.T) {
	_, err := ImportTOML("bad", []byte("not = [valid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toml decoding")
}

func TestTreeExportTOML(t *testing.T) {
	tree := newTestTree(t)

	var buf bytes.Buffer
	require.NoError(t, tree.ExportTOML("network", &buf))
	assert.Contains(t, buf.String(), `name = "lan"`)

	err := tree.ExportTOML("missing", &buf)
	require.Error(t, err)
}
