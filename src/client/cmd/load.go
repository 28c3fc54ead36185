package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/apimgr/courseplanner/src/catalog"
	"github.com/apimgr/courseplanner/src/common/terminal"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the catalog and report rejected lines",
	Long: `Load the catalog file and report how many lines were accepted.
Every rejected line is listed. Exits with code 1 if any line was rejected
or the file could not be read.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src := getSource()

		c := catalog.New()
		report, err := c.Load(src)
		if err != nil {
			return fmt.Errorf("load %s: %w", src, err)
		}

		if err := printReport(cmd.OutOrStdout(), report, c, getOutputFormat()); err != nil {
			return err
		}
		if !report.OK() {
			return fmt.Errorf("%d of %d lines rejected", len(report.Rejected), report.Lines)
		}
		return nil
	},
}

type rejectedLine struct {
	Line  int    `json:"line"`
	Text  string `json:"text"`
	Error string `json:"error"`
}

type loadSummary struct {
	Source   string         `json:"source"`
	Lines    int            `json:"lines"`
	Accepted int            `json:"accepted"`
	Height   int            `json:"height"`
	Rejected []rejectedLine `json:"rejected"`
}

func printReport(w io.Writer, report *catalog.LoadReport, c *catalog.Catalog, format string) error {
	if format == "json" {
		summary := loadSummary{
			Source:   report.Source,
			Lines:    report.Lines,
			Accepted: report.Accepted,
			Height:   c.Tree().Height(),
			Rejected: []rejectedLine{},
		}
		for _, le := range report.Rejected {
			summary.Rejected = append(summary.Rejected, rejectedLine{
				Line:  le.Line,
				Text:  le.Text,
				Error: le.Err.Error(),
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	sym := terminal.GetSymbols()
	for _, le := range report.Rejected {
		fmt.Fprintf(w, "%s line %d: %v\n", sym.Error, le.Line, le.Err)
		if format != "plain" && le.Text != "" {
			fmt.Fprintf(w, "    %q\n", le.Text)
		}
	}

	status := sym.Success
	if !report.OK() {
		status = sym.Warning
	}
	fmt.Fprintf(w, "%s %d of %d lines loaded from %s\n", status, report.Accepted, report.Lines, report.Source)
	return nil
}
