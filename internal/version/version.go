// Package version reports build information.
//
// The values are set at build time:
//
//	go build -ldflags "-X github.com/callibrity/person-workshop/internal/version.version=v1.2.3 \
//	  -X github.com/callibrity/person-workshop/internal/version.buildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// When they are not set the module version and vcs revision from the embedded build info are used.
package version

import "runtime/debug"

var (
	version   = ""
	buildDate = "unknown"
	gitCommit = ""
)

type Info struct {
	Version   string
	BuildDate string
	GitCommit string
}

func Get() Info {
	info := Info{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = s.Value
				}
			case "vcs.time":
				if info.BuildDate == "unknown" {
					info.BuildDate = s.Value
				}
			}
		}
	}

	if info.Version == "" {
		info.Version = "(devel)"
	}
	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	return info
}
