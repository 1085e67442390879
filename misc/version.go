// Package misc keeps build time information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set by the linker: -ldflags "-X reveal/misc.version=... -X reveal/misc.githash=..."
var (
	version = "dev"
	githash = "unknown"
)

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return githash
}

// GetAppName returns program name without path and extension.
func GetAppName() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}
