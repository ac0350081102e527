package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVersionString(t *testing.T) {
	tests := []struct {
		name          string
		version       string
		gitCommit     string
		buildDate     string
		expectedParts []string
	}{
		{
			name:          "all metadata present",
			version:       "v1.0.0",
			gitCommit:     "abc123",
			buildDate:     "2026-01-21T10:00:00Z",
			expectedParts: []string{"v1.0.0", "commit: abc123", "built: 2026-01-21T10:00:00Z"},
		},
		{
			name:          "only version",
			version:       "v1.0.0",
			expectedParts: []string{"v1.0.0"},
		},
		{
			name:          "no version defaults to dev",
			expectedParts: []string{"dev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origCommit, origDate := Version, GitCommit, BuildDate
			t.Cleanup(func() {
				Version, GitCommit, BuildDate = origVersion, origCommit, origDate
			})

			Version = tt.version
			GitCommit = tt.gitCommit
			BuildDate = tt.buildDate

			result := buildVersionString()
			for _, part := range tt.expectedParts {
				assert.Contains(t, result, part)
			}
			if len(tt.expectedParts) > 1 {
				assert.True(t, strings.Contains(result, ", "), "multi-part version should be comma-separated")
			}
		})
	}
}
