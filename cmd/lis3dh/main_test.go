package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"

	"github.com/mklimuk/lis3dh/cmd/lis3dh/console"
)

func TestRun_ExitCodes(t *testing.T) {
	exiter := cli.OsExiter
	t.Cleanup(func() { cli.OsExiter = exiter })
	cli.OsExiter = func(int) {}

	assert.Equal(t, console.ExitUsage, run([]string{"lis3dh", "read"}))
	assert.Equal(t, console.ExitUsage, run([]string{"lis3dh", "write", "--yes", "STATUS_REG", "00"}))
	assert.Equal(t, 0, run([]string{"lis3dh", "config"}))
}
