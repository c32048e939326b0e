package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withBuildInfo(t *testing.T, info *debug.BuildInfo) {
	t.Helper()
	prev := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
	t.Cleanup(func() { readBuildInfo = prev })
}

func TestStringUsesLdflags(t *testing.T) {
	prevV, prevC, prevD := Version, CommitHash, BuildDate
	t.Cleanup(func() { Version, CommitHash, BuildDate = prevV, prevC, prevD })
	Version, CommitHash, BuildDate = "v1.2.3", "abc1234", "2026-01-02"
	withBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "v9.9.9"}})

	got := String()
	if !strings.HasPrefix(got, "v1.2.3 (abc1234) built 2026-01-02") {
		t.Fatalf("String() = %q", got)
	}
}

func TestStringFallsBackToBuildInfo(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
		},
	})

	got := String()
	if !strings.HasPrefix(got, "v0.4.0 (0123456) built 2026-03-04T05:06:07Z") {
		t.Fatalf("String() = %q", got)
	}
}

func TestStringWithoutBuildInfo(t *testing.T) {
	withBuildInfo(t, nil)
	if got := String(); !strings.HasPrefix(got, "dev (unknown) built unknown") {
		t.Fatalf("String() = %q", got)
	}
}
