// Package buildinfo holds release metadata set with -ldflags -X, e.g.
//
//	go build -ldflags "-X github.com/aidanlsb/tourtag/internal/buildinfo.Version=v0.3.0"
//
// Local builds leave them empty and rely on runtime/debug build info.
package buildinfo

var (
	Version = ""
	Commit  = ""
	Date    = ""
)
