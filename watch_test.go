// File: uci/watch_test.go
package uci

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeWatch(t *testing.T) {
	tree := newTestTree(t)
	require.NoError(t, tree.LoadConfig("network", false))

	events, err := tree.Watch("network", WatchOptions{
		PollInterval: MinPollInterval,
		Debounce:     50 * time.Millisecond,
	})
	require.NoError(t, err)

	// let the poller establish its baseline before touching the file
	time.Sleep(250 * time.Millisecond)

	updated := "\nconfig interface 'lan'\n\toption proto 'dhcp'\n\n"
	require.NoError(t, os.WriteFile(filepath.Join(tree.dir, "network"), []byte(updated), 0644))

	select {
	case ev := <-events:
		assert.Equal(t, "network", ev)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	// the watcher force-reloaded the config
	values, err := tree.Get("network", "lan", "proto")
	require.NoError(t, err)
	assert.Equal(t, []string{"dhcp"}, values)

	tree.StopWatch("network")
}

func TestTreeWatchReturnsExistingChannel(t *testing.T) {
	tree := newTestTree(t)

	ch1, err := tree.Watch("network", DefaultWatchOptions())
	require.NoError(t, err)
	ch2, err := tree.Watch("network", DefaultWatchOptions())
	require.NoError(t, err)
	assert.Equal(t, ch1, ch2)

	tree.StopWatch("network")
}

func TestTreeStopWatchClosesChannel(t *testing.T) {
	tree := newTestTree(t)

	events, err := tree.Watch("network", WatchOptions{PollInterval: MinPollInterval})
	require.NoError(t, err)

	tree.StopWatch("network")

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("watch channel not closed after StopWatch")
		}
	}
}

func TestTreeStopWatchDuringReload(t *testing.T) {
	tree := newTestTree(t)
	path := filepath.Join(tree.dir, "network")

	for i := 0; i < 10; i++ {
		events, err := tree.Watch("network", WatchOptions{
			PollInterval: MinPollInterval,
			Debounce:     time.Nanosecond,
		})
		require.NoError(t, err)

		content := fmt.Sprintf("\nconfig interface 'lan'\n\toption metric '%d'\n\n", i)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		// stop at a different point of the poll/debounce cycle each
		// round; a reload callback still in flight must not send on
		// the closed channel
		time.Sleep(time.Duration(i) * 25 * time.Millisecond)
		tree.StopWatch("network")

		// drain until closed
		for range events {
		}
	}
}

func TestTreeStopWatchUnknownName(t *testing.T) {
	tree := newTestTree(t)
	tree.StopWatch("nothing") // no watcher, no panic
}
