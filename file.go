// File: uci/file.go
package uci

import (
	"fmt"
	"os"
	"path/filepath"
)

// saveConfig writes a config to its backing file atomically: the
// content goes to a temp file in the same directory, is synced, then
// renamed over the target. The temp file is removed on any failure.
// Callers hold t.mu.
func (t *Tree) saveConfig(cfg *Config) error {
	tmp, err := os.CreateTemp(t.dir, cfg.Name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file in '%s': %w", t.dir, err)
	}
	tmpPath := tmp.Name()

	renamed := false
	defer func() {
		if !renamed {
			os.Remove(tmpPath)
		}
	}()

	if err := cfg.Write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp config file '%s': %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp config file '%s': %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp config file '%s': %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on '%s': %w", tmpPath, err)
	}

	target := filepath.Join(t.dir, cfg.Name)
	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("failed to rename temp config file to '%s': %w", target, err)
	}
	renamed = true
	return nil
}
