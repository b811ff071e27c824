package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"specindex/internal/build"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var force bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Scan the spec root and write the index page and aliases",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			summary, err := build.Run(cmd.Context(), cfg, logger, build.Options{Force: force})
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Build", colorize) {
				fmt.Fprintln(out, line)
			}
			lines := []string{
				renderStatusLine("Specs", statusInfo, fmt.Sprintf("%d in %d families", summary.Specs, summary.Groups), colorize),
				renderStatusLine("Aliases", statusInfo, fmt.Sprintf("%d created, %d already present", summary.AliasesCreated, summary.AliasesExisting), colorize),
				renderStatusLine("Index", statusOK, summary.IndexPath, colorize),
			}
			if summary.TimestampsPath != "" {
				lines = append(lines, renderStatusLine("Timestamps", statusOK, fmt.Sprintf("%s (%d entries)", summary.TimestampsPath, summary.Timestamps), colorize))
			}
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing index page")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the build summary as JSON")
	return cmd
}
