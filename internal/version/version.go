// Package version holds build metadata injected via ldflags.
package version

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String renders the version with the short commit when one is known.
func String() string {
	if Commit == "unknown" || Commit == "" {
		return Version
	}
	commit := Commit
	if len(commit) > 8 {
		commit = commit[:8]
	}
	return Version + " (" + commit + ")"
}
