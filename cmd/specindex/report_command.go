package main

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"specindex/internal/buildreport"
	"specindex/internal/fileutil"
)

func newReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "report <spec-file> <output.html>",
		Short:       "Render spec processor JSON messages read from stdin as an HTML page",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read messages: %w", err)
			}
			messages, err := buildreport.ParseMessages(raw)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			report := buildreport.Report{SpecFile: args[0], Messages: messages, Generated: time.Now()}
			if err := buildreport.Render(&buf, report); err != nil {
				return err
			}
			if err := fileutil.WriteTruncate(args[1], buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d messages to %s\n", len(messages), args[1])
			return nil
		},
	}
}
