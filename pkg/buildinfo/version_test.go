package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	Version, Commit, Date = "dev", "none", "unknown"
	fromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
		},
	})
	if Version != "v0.3.1" || Commit != "abc123" || Date != "2024-05-01T10:00:00Z" {
		t.Errorf("got %s %s %s", Version, Commit, Date)
	}

	// ldflags win over embedded info.
	Version, Commit = "v9.9.9", "stamped"
	fromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})
	if Version != "v9.9.9" || Commit != "stamped" {
		t.Errorf("ldflags overwritten: %s %s", Version, Commit)
	}

	Version = "dev"
	fromBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if Version != "dev" {
		t.Errorf("(devel) should not replace dev, got %s", Version)
	}
}

func TestUserAgent(t *testing.T) {
	if !strings.HasPrefix(UserAgent(), "commitcraft/") {
		t.Errorf("UserAgent() = %q", UserAgent())
	}
}
