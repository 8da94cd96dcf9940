// Package version holds build-time identifying information for the aud CLI.
package version

import "github.com/fatih/color"

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI, with each number
	// colored. Its initializer is not a constant string, so -ldflags -X
	// does not override it.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// GitCommit is an optional git commit hash, set at build time.
	GitCommit = ""

	// BuildDate is an optional ISO-8601 build date, set at build time.
	BuildDate = ""
)
