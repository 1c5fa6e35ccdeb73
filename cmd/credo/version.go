package main

import (
	"runtime/debug"

	"github.com/credo-go/credo/internal/credo"
)

// Version information set at build time via ldflags.
var version = ""

// getVersion returns the version string and propagates it to the run.
// Priority: ldflags > debug.ReadBuildInfo > "(devel)"
func getVersion() string {
	v := "(devel)"
	switch {
	case version != "":
		v = version
	default:
		if buildInfo, ok := debug.ReadBuildInfo(); ok && buildInfo.Main.Version != "" {
			v = buildInfo.Main.Version
		}
	}
	credo.Version = v
	return v
}
