package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"specindex/internal/build"
	"specindex/internal/deps"
	"specindex/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the configured paths and the external programs a build needs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Configuration", colorize) {
				fmt.Fprintln(out, line)
			}
			configMessage := ctx.configPath
			if !ctx.configExists {
				configMessage += " (not found, using defaults)"
			}
			fmt.Fprintln(out, renderStatusLine("Config", statusInfo, configMessage, colorize))
			fmt.Fprintln(out, renderStatusLine("Alias strategy", statusInfo, cfg.Aliases.Strategy, colorize))
			fmt.Fprintln(out, renderStatusLine("Metadata reader", statusInfo, cfg.Metadata.Reader, colorize))
			fmt.Fprintln(out, renderStatusLine("Build lock", statusInfo, build.LockPath(cfg.Paths.Root), colorize))

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Paths", colorize) {
				fmt.Fprintln(out, line)
			}
			results := preflight.RunAll(cfg)
			for _, r := range results {
				kind := statusOK
				if !r.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Dependencies", colorize) {
				fmt.Fprintln(out, line)
			}
			statuses := preflight.CheckSystemDeps(cfg)
			for _, line := range dependencyLines(statuses, colorize) {
				fmt.Fprintln(out, line)
			}

			if len(preflight.Failed(results)) > 0 || len(deps.MissingRequired(statuses)) > 0 {
				return errors.New("environment check failed")
			}
			return nil
		},
	}
}
