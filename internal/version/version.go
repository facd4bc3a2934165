// Package version reports build information for humane.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Info contains version information about humane.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// Placeholders used when no value is injected at link time.
const (
	DevVersion = "dev"
	Unknown    = "unknown"
)

// NewInfo creates a new Info from the build variables.
// Values left empty or at their placeholder are filled from the module
// build info when the binary was built with VCS stamping.
func NewInfo(version, commit, date string) *Info {
	info := &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.fill(bi)
	}
	info.setDefaults()
	return info
}

func (i *Info) fill(bi *debug.BuildInfo) {
	if isPlaceholder(i.Version) && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if isPlaceholder(i.Commit) {
				i.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if isPlaceholder(i.Date) {
				i.Date = s.Value
			}
		}
	}
}

func (i *Info) setDefaults() {
	if i.Version == "" {
		i.Version = DevVersion
	}
	if i.Commit == "" {
		i.Commit = Unknown
	}
	if i.Date == "" {
		i.Date = Unknown
	}
}

func isPlaceholder(v string) bool {
	return v == "" || v == DevVersion || v == Unknown
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// String returns a formatted version string.
func (i *Info) String() string {
	return fmt.Sprintf("humane %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`humane %s
  Commit:   %s
  Built:    %s
  Go:       %s
  OS/Arch:  %s/%s`, i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}
