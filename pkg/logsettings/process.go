package logsettings

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// BuildVersion can be set at link time:
//
//	go build -ldflags "-X github.com/justtrackio/logsink/pkg/logsettings.BuildVersion=1.2.3+abc"
var BuildVersion string

// ProcessInfo provides the fallbacks for the application name and version if the config has none.
//
//go:generate go run github.com/vektra/mockery/v2 --name ProcessInfo
type ProcessInfo interface {
	ProgramName() (string, bool)
	Version() (string, bool)
}

type processInfo struct{}

func NewProcessInfo() ProcessInfo {
	return processInfo{}
}

// ProgramName is the base name of the executable without its extension.
func (processInfo) ProgramName() (string, bool) {
	path, err := os.Executable()
	if err != nil && len(os.Args) > 0 {
		path = os.Args[0]
	}

	return programName(path)
}

// Version is the link time BuildVersion or the version of the main module, cut off at the build metadata.
func (processInfo) Version() (string, bool) {
	if BuildVersion != "" {
		return informationalVersion(BuildVersion)
	}

	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "(devel)" {
		return "", false
	}

	return informationalVersion(info.Main.Version)
}

func programName(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", false
	}

	return name, true
}

func informationalVersion(version string) (string, bool) {
	version, _, _ = strings.Cut(strings.TrimSpace(version), "+")

	return version, version != ""
}
