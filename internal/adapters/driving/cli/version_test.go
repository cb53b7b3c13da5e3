package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Short(t *testing.T) {
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_Output(t *testing.T) {
	old := version
	version = "test-version"
	defer func() { version = old }()

	out, err := execute(context.Background(), "", "version")

	require.NoError(t, err)
	assert.Equal(t, "apikit version test-version\n", out)
}
