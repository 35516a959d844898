package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/veeks/internal/render"
	"github.com/msto63/veeks/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		return output(cmd, render.NewResult(info.String()).
			Add("version", info.Version).
			Add("git_commit", info.GitCommit).
			Add("build_date", info.BuildDate).
			Add("go_version", info.GoVersion).
			Add("os_arch", info.Platform()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
