// Package buildinfo exposes version metadata injected at link time:
//
//	go build -ldflags "-X .../buildinfo.Version=v1.2.0 -X .../buildinfo.Date=... -X .../buildinfo.Commit=..."
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes build metadata to w; unset values print as "N/A".
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
