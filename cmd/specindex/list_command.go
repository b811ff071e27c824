package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"specindex/internal/build"
	"specindex/internal/catalog"
)

// familyView is the machine-readable listing of one shortname family.
type familyView struct {
	Shortname string           `json:"shortname" yaml:"shortname"`
	Current   string           `json:"current" yaml:"current"`
	Members   []catalog.Record `json:"members" yaml:"members"`
}

func familyViews(c *catalog.Catalog) []familyView {
	names := c.Shortnames()
	views := make([]familyView, 0, len(names))
	for _, name := range names {
		view := familyView{Shortname: name, Members: c.Members(name)}
		if current, ok := c.Current(name); ok {
			view.Current = current.Dir
		}
		views = append(views, view)
	}
	return views
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var yamlOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show discovered specs grouped by shortname without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput && yamlOutput {
				return errors.New("--json and --yaml are mutually exclusive")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			c, err := build.Discover(cmd.Context(), cfg, nil, logger)
			if err != nil {
				return err
			}

			views := familyViews(c)
			switch {
			case jsonOutput:
				return writeJSON(cmd, views)
			case yamlOutput:
				return writeYAML(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintf(out, "No specs found under %s\n", cfg.Paths.Root)
				return nil
			}
			headers := []string{"Shortname", "Folder", "Level", "Status", "Current", "Title"}
			var rows [][]string
			for _, view := range views {
				for _, rec := range view.Members {
					rows = append(rows, []string{
						view.Shortname,
						rec.Dir,
						strconv.Itoa(rec.Level),
						displayStatus(rec.WorkStatus),
						yesNo(rec.CurrentWork),
						rec.DisplayTitle(),
					})
				}
			}
			fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignRight}))
			fmt.Fprintf(out, "%d specs in %d families\n", c.Records(), c.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output as YAML")
	return cmd
}
