// SPDX-License-Identifier: MIT
//
// Package build exposes metadata embedded into the binary at compile time
// with linker flags, for example:
//
//	go build -ldflags "-X bitwise/pkg/build.buildName=bitwise \
//	    -X bitwise/pkg/build.buildVersion=0.1.0 ..."
//
// Development builds run without the flags and report "unknown" values.
package build

import "fmt"

// DefaultDescription is reported when no description was injected.
const DefaultDescription = "Bit manipulation toolkit: XOR reductions, range XOR and shift division"

type ldFlags struct {
	Name        string
	Description string
	Time        string
	Commit      string
	Version     string
}

// Package-level variables for build information, populated by -ldflags.
var (
	buildName        string
	buildDescription string
	buildTime        string
	buildCommit      string
	buildVersion     string
	buildFlags       = defaultFlags()
)

func defaultFlags() *ldFlags {
	return &ldFlags{
		Name:        "bitwise",
		Description: DefaultDescription,
		Time:        "unknown",
		Commit:      "unknown",
		Version:     "unknown",
	}
}

// Initialize validates and copies build information from ldflags variables
// into the buildFlags struct. It returns an error naming the first missing
// required flag and leaves the defaults in place in that case. The
// description is optional.
func Initialize() error {
	if buildName == "" {
		return fmt.Errorf("BuildName is required")
	}
	if buildTime == "" {
		return fmt.Errorf("BuildTime is required")
	}
	if buildCommit == "" {
		return fmt.Errorf("BuildCommit is required")
	}
	if buildVersion == "" {
		return fmt.Errorf("BuildVersion is required")
	}

	buildFlags.Name = buildName
	buildFlags.Time = buildTime
	buildFlags.Commit = buildCommit
	buildFlags.Version = buildVersion
	if buildDescription != "" {
		buildFlags.Description = buildDescription
	}

	return nil
}

// GetBuildFlags returns the current build information.
func GetBuildFlags() *ldFlags {
	return buildFlags
}

// String formats the build information as a one-line version banner.
func (f *ldFlags) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", f.Name, f.Version, f.Commit, f.Time)
}
