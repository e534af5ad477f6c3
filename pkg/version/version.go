// Package version carries the build identity stamped into the dlb binary
// via -ldflags at release time.
package version

var (
	Version = "dev"
	Commit  = "none"
	Built   = "unknown"
)

// BuildInfo is the stamped build identity reported by dlb --version.
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
}

func Info() BuildInfo {
	return BuildInfo{Version: Version, Commit: Commit, Built: Built}
}
