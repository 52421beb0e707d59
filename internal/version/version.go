// Package version reports how the hashgen binary was built.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const devVersion = "0.1.0-dev"

var (
	// AppName is the binary name shown in version output.
	AppName = "hashgen"

	// Version is overridden with -ldflags in release builds.
	Version = devVersion

	// Revision is the VCS commit the binary was built from.
	Revision = "HEAD"
)

// apply fills Version and Revision from module build metadata unless ldflags
// already set them.
func apply(mainVersion string, settings map[string]string) {
	if Version == devVersion || Version == "" {
		if mainVersion != "" && mainVersion != "(devel)" {
			Version = strings.TrimPrefix(mainVersion, "v")
		}
	}
	if Revision == "HEAD" || Revision == "" {
		if r := settings["vcs.revision"]; r != "" {
			if settings["vcs.modified"] == "true" {
				r += "-dirty"
			}
			Revision = r
		}
	}
}

// Detailed returns e.g. `hashgen 0.1.0 (5e23a4; go1.24.5; linux/amd64)`.
func Detailed() string {
	return fmt.Sprintf("%s %s (%s; %s; %s/%s)", AppName, Version, Revision, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return
	}
	settings := map[string]string{}
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	apply(info.Main.Version, settings)
}
