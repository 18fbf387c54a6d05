// Package version reports the build identity of mandelsaver.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/mandelsaver/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/mandelsaver/internal/version.Commit=abc1234"
//
// Unset values are filled from the VCS stamp in the binary's build info.
var (
	Version = ""
	Commit  = ""
)

const shortHash = 7

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v, c := fromBuildInfo(info)
			if Version == "" {
				Version = v
			}
			if Commit == "" {
				Commit = c
			}
		}
	}

	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo derives a dev version from the commit date and a short,
// dirty-marked commit hash. Either result may be empty.
func fromBuildInfo(info *debug.BuildInfo) (version, commit string) {
	var revision, modified, vcsTime string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if revision != "" {
		commit = revision
		if len(commit) > shortHash {
			commit = commit[:shortHash]
		}
		if modified == "true" {
			commit += "-dirty"
		}
	}

	if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
		version = "dev-" + t.Format("20060102")
	}
	return version, commit
}

// Full returns the version with its commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
