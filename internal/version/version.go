package version

import (
	"runtime"
	"runtime/debug"
	"strings"
)

// Placeholders reported when neither ldflags nor BuildInfo provide a value.
const (
	devVersion  = "dev"
	noCommit    = "none"
	unknownDate = "unknown"
)

// Build-time variables injected via -ldflags:
//
//	-X github.com/tbckr/artifact-info/internal/version.Version=1.0.0
//	-X github.com/tbckr/artifact-info/internal/version.Commit=abc1234
//	-X github.com/tbckr/artifact-info/internal/version.Date=2024-01-01T00:00:00Z
var (
	Version = devVersion
	Commit  = noCommit
	Date    = unknownDate
)

// Info is the version report printed by the version command.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Get returns the current version information.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date, GoVersion: runtime.Version()}
}

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	applyBuildInfo(bi)
}

// applyBuildInfo fills the variables still holding their placeholders from
// bi. Values injected through ldflags always win.
func applyBuildInfo(bi *debug.BuildInfo) {
	if Version == devVersion {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			Version = strings.TrimPrefix(v, "v")
		}
	}

	var revision, vcsTime string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if Commit == noCommit && revision != "" {
		Commit = revision[:min(len(revision), 7)]
	}
	if Date == unknownDate && vcsTime != "" {
		Date = vcsTime
	}
}
