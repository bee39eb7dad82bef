package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

func GetConfigHome() string {
	return filepath.Join(xdg.ConfigHome, "azchat")
}

func DefaultConfigFilePath() string {
	return filepath.Join(GetConfigHome(), "config.toml")
}
