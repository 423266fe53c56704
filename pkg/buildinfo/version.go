// Package buildinfo holds the version stamped into the statcards binary.
//
// Values are set with ldflags, for example:
//
//	go build -ldflags "-X github.com/matzehuels/statcards/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/statcards/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/statcards
package buildinfo

import "fmt"

var (
	// Version is the release tag. The health endpoint reports it.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Template returns the --version template for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
