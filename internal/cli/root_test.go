//go:build !noprofiler

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootShowsHelp(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, out, "regionprof")
	assert.Contains(t, out, "run")
}

func TestRootVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
