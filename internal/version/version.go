// Where: internal/version/version.go
// What: Build identity for the harness binary.
// Why: Tie a set of timings to the exact harness build that measured them.
package version

import (
	"runtime/debug"
)

const (
	devVersion  = "dev"
	revisionLen = 7
)

var readBuildInfo = debug.ReadBuildInfo

// GetVersion identifies the running binary.
// A VCS stamp wins ("abc1234", or "abc1234 (dirty)" for a modified tree),
// then a tagged module version from go install, then "dev".
func GetVersion() string {
	info, ok := readBuildInfo()
	if !ok {
		return devVersion
	}
	if rev, dirty := vcsStamp(info.Settings); rev != "" {
		if dirty {
			return rev + " (dirty)"
		}
		return rev
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	return devVersion
}

func vcsStamp(settings []debug.BuildSetting) (string, bool) {
	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	rev := values["vcs.revision"]
	if len(rev) > revisionLen {
		rev = rev[:revisionLen]
	}
	return rev, values["vcs.modified"] == "true"
}
