// Package cache manages per-user state under the XDG cache directory.
// Only line-input history lives here; conversation transcripts are never
// persisted.
package cache

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"
)

func historyFilePath() (string, error) {
	return xdg.CacheFile("azchat/input_history")
}

// LoadHistory restores input history into the liner, best effort.
func LoadHistory(line *liner.State) {
	path, err := historyFilePath()
	if err != nil {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	line.ReadHistory(f)
}

// SaveHistory persists input history, best effort. 0600 since past inputs
// may contain sensitive text.
func SaveHistory(line *liner.State) {
	path, err := historyFilePath()
	if err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}
