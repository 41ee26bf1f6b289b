// Package buildinfo carries the gridboard build stamp.
//
// The variables are overridden with ldflags at release time:
//
//	go build -ldflags "-X github.com/matzehuels/gridboard/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/gridboard/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/gridboard
package buildinfo

import "fmt"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"
	// Commit is the short git SHA.
	Commit = "none"
	// Date is the UTC build time in RFC 3339.
	Date = "unknown"
)

// Info is the build stamp in a serializable form.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"built"`
}

// Get returns the current build stamp.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String renders the stamp as printed by "gridboard version".
func (i Info) String() string {
	return fmt.Sprintf("gridboard %s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}

// String is shorthand for Get().String().
func String() string {
	return Get().String()
}

// Template is the cobra --version template.
func Template() string {
	return "{{.Name}} " + Version + " (commit " + Commit + ")\n"
}
