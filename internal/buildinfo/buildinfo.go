package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/aalvaropc/customs/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("customs %s (commit=%s, date=%s)", Version, Commit, Date)
}

// UserAgent is sent to UNIPASS unless customs.yaml overrides it.
func UserAgent() string {
	return "customs/" + Version
}
