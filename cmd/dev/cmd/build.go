package cmd

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gophertribe/devtool/build"
)

type target struct {
	os   string
	arch string
}

// boards maps the supported single-board computers to their GOOS/GOARCH.
var boards = map[string]target{
	"nanopi-neo": {os: "linux", arch: "arm"},
	"rpi":        {os: "linux", arch: "arm64"},
}

func BuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the lis3dh cli",
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("version")
			t := target{os: runtime.GOOS, arch: runtime.GOARCH}
			if board, _ := cmd.Flags().GetString("board"); board != "" {
				var ok bool
				t, ok = boards[board]
				if !ok {
					return fmt.Errorf("unknown board %q", board)
				}
			}
			slog.Info("building", "os", t.os, "arch", t.arch, "version", version)
			// periph and gobot talk to spidev directly so cgo is not needed
			// and cross builds stay native
			return build.GoBuild(fmt.Sprintf("dist/lis3dh-%s-%s", t.os, t.arch), "./cmd/lis3dh", build.GoBuildOpts{
				Version:       version,
				InjectVersion: true,
				ConfigPackage: "main",
				Arch:          t.arch,
				OS:            t.os,
			})
		},
	}
	cmd.Flags().String("version", "latest", "version of the cli")
	cmd.Flags().String("board", "", "target board: nanopi-neo or rpi")
	return cmd
}
