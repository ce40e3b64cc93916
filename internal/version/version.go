package version

import "runtime"

// These variables can be overridden at build time via -ldflags
var (
	Version   = "2.1.0"   // Set via: -ldflags "-X github.com/samuelr2112/portfolio/internal/version.Version=v2.2.0"
	BuildTime = "unknown" // Set via: -ldflags "-X github.com/samuelr2112/portfolio/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
	GitCommit = "unknown" // Set via: -ldflags "-X github.com/samuelr2112/portfolio/internal/version.GitCommit=$(git rev-parse HEAD)"
)

// BuildInfo contains build information reported at startup
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetBuildInfo returns complete build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
