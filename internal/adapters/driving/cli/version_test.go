package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_Executes(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"dev", "schematools version dev\n"},
		{"1.4.0", "schematools version 1.4.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			original := version
			version = tt.version
			defer func() { version = original }()

			stdout, _, err := runCommand(t, "version")
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}
