package handler

import (
	"cmp"
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
)

// VersionInfo is the body of /version
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Set with -ldflags "-X github.com/krishiquest/KrishiQuest_Go/internal/handler.Version=..."
var (
	Version   string
	BuildTime string
	GitCommit string
)

const devVersion = "dev"

// HandleVersion reports the running build
// @Summary Build version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, buildInfo())
	}
}

// GetVersion prefers the linked version, then $VERSION, then "dev"
func GetVersion() string {
	return cmp.Or(Version, os.Getenv("VERSION"), devVersion)
}

// buildInfo fills commit and time from the embedded VCS stamp when ldflags left them empty
func buildInfo() VersionInfo {
	info := VersionInfo{
		Version:   GetVersion(),
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = cmp.Or(info.GitCommit, s.Value)
		case "vcs.time":
			info.BuildTime = cmp.Or(info.BuildTime, s.Value)
		}
	}
	return info
}
