package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCmd_UnknownBoard(t *testing.T) {
	c := BuildCmd()
	require.NoError(t, c.Flags().Set("board", "beaglebone"))
	err := c.RunE(c, nil)
	assert.ErrorContains(t, err, "unknown board")
}

func TestBoards(t *testing.T) {
	assert.Equal(t, target{os: "linux", arch: "arm"}, boards["nanopi-neo"])
	assert.Equal(t, target{os: "linux", arch: "arm64"}, boards["rpi"])
}
