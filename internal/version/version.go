// Package version reports the build version of the anchor binaries.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at link time with -ldflags "-X .../internal/version.Version=v1.2.3".
var Version = "dev"

// String returns Version, or the module version and VCS revision recorded
// by the Go toolchain when Version was not set at link time.
func String() string {
	if Version != "dev" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) string {
	v := info.Main.Version
	if v == "" || v == "(devel)" {
		v = Version
	}
	var rev string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return v
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "-dirty"
	}
	return fmt.Sprintf("%s-%s", v, rev)
}
