// Package version carries the CLI's build identity. Everything here is a
// plain var so release builds can stamp real values via -ldflags.
package version

import "github.com/fatih/color"

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the graphite CLI, with each
	// segment colored for terminal display.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// GitCommit, GitMessage, and BuildDate (ISO-8601) are empty unless
	// stamped at build time.
	GitCommit  = ""
	GitMessage = ""
	BuildDate  = ""
)
