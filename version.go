package main

// Build metadata, overridden during release builds via
// -ldflags "-X main.Version=... -X main.GitCommit=... -X main.BuildDate=...".
var (
	// Version is the semantic version of the binary (e.g., "v1.0.0").
	Version = "dev"

	// GitCommit is the git commit hash at build time.
	GitCommit = ""

	// BuildDate is the build timestamp in RFC3339 format.
	BuildDate = ""
)
