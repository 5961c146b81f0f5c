package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

func init() {
	// On Darwin (macOS), prefer ~/.config for CLI tools instead of
	// ~/Library/Application Support, but only if XDG_CONFIG_HOME is not set
	if runtime.GOOS == "darwin" && os.Getenv("XDG_CONFIG_HOME") == "" {
		xdg.ConfigHome = filepath.Join(xdg.Home, ".config")
	}
}
