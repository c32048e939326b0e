// Package version holds build metadata, injected via ldflags for releases
// and read from the module build info otherwise.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time:
//
//	-X 'github.com/janekbaraniewski/openchart/internal/version.Version=...'
//	-X 'github.com/janekbaraniewski/openchart/internal/version.CommitHash=...'
//	-X 'github.com/janekbaraniewski/openchart/internal/version.BuildDate=...'
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// resolved fills dev builds from the module info that `go install` records.
func resolved() (ver, commit, date string) {
	ver, commit, date = Version, CommitHash, BuildDate
	info, ok := readBuildInfo()
	if !ok {
		return ver, commit, date
	}
	if ver == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		ver = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" && len(s.Value) >= 7 {
				commit = s.Value[:7]
			}
		case "vcs.time":
			if date == "unknown" {
				date = s.Value
			}
		}
	}
	return ver, commit, date
}

// String returns a formatted version string.
func String() string {
	ver, commit, date := resolved()
	return fmt.Sprintf("%s (%s) built %s %s/%s", ver, commit, date, runtime.GOOS, runtime.GOARCH)
}
