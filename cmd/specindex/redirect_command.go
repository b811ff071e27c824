package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"specindex/internal/alias"
	"specindex/internal/config"
)

func newRedirectCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var baseFlag string

	cmd := &cobra.Command{
		Use:   "redirect <folder>",
		Short: "Write a redirect page from <output>/<folder>/ to the published spec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			output := cfg.Paths.RedirectOutput
			if value := strings.TrimSpace(outputFlag); value != "" {
				if output, err = config.ExpandPath(value); err != nil {
					return fmt.Errorf("resolve output: %w", err)
				}
			}
			base := cfg.Aliases.RedirectBase
			if value := strings.TrimSpace(baseFlag); value != "" {
				base = value
			}

			path, err := alias.WriteStandaloneRedirect(output, base, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote redirect to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory to create the redirect folder in (overrides paths.redirect_output)")
	cmd.Flags().StringVar(&baseFlag, "base", "", "Base URL of the published specs (overrides aliases.redirect_base)")
	return cmd
}
