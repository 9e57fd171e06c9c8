// File: uci/decode_test.go
package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionScan(t *testing.T) {
	cfg, err := Parse("network", "config interface 'lan'\n"+
		"\toption ifname 'eth0'\n"+
		"\toption metric '10'\n"+
		"\toption enabled 'true'\n"+
		"\toption timeout '5s'\n"+
		"\tlist dns '8.8.8.8'\n"+
		"\tlist dns '8.8.4.4'\n")
	require.NoError(t, err)

	sec, err := cfg.Get("lan")
	require.NoError(t, err)
	require.NotNil(t, sec)

	type iface struct {
		Ifname  string   `uci:"ifname"`
		Metric  int      `uci:"metric"`
		Enabled bool     `uci:"enabled"`
		DNS     []string `uci:"dns"`
	}

	var got iface
	require.NoError(t, sec.Scan(&got))
	assert.Equal(t, iface{
		Ifname:  "eth0",
		Metric:  10,
		Enabled: true,
		DNS:     []string{"8.8.8.8", "8.8.4.4"},
	}, got)
}

func TestSectionScanInvalidTarget(t *testing.T) {
	sec := NewSection("interface", "lan")

	err := sec.Scan(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-nil pointer")

	var s struct{}
	err = sec.Scan(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-nil pointer")
}

func TestTreeScanSection(t *testing.T) {
	tree := newTestTree(t)

	type iface struct {
		Proto   string   `uci:"proto"`
		Enabled bool     `uci:"enabled"`
		DNS     []string `uci:"dns"`
	}

	var got iface
	require.NoError(t, tree.ScanSection("network", "lan", &got))
	assert.Equal(t, "static", got.Proto)
	assert.True(t, got.Enabled)
	assert.Equal(t, []string{"8.8.8.8", "8.8.4.4"}, got.DNS)

	err := tree.ScanSection("network", "absent", &got)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}
