// Package misc keeps build time information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set with -ldflags "-X oss/misc.version=... -X oss/misc.gitHash=...".
var (
	version = "dev"
	gitHash = "unknown"
)

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns commit the program was built from.
func GetGitHash() string {
	return gitHash
}

// GetAppName returns name of the executable without extension.
func GetAppName() string {
	name := filepath.Base(os.Args[0])
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || strings.HasSuffix(name, ".test") || strings.HasPrefix(name, "__debug_bin") {
		return "oss"
	}
	return name
}
