package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-digest/internal/classify"
	"github.com/pdiddy/arxiv-digest/internal/digest"
	"github.com/pdiddy/arxiv-digest/internal/report"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

func addTriageFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("keywords", nil, "keywords to prioritize (matched against titles)")
	cmd.Flags().StringSlice("authors", nil, "author names to prioritize")
	cmd.Flags().String("outfile", "", "write the report to a file instead of stdout (disables color)")
	cmd.Flags().String("format", "", "report format: text, json, or yaml (default text)")
}

func runTriage(cmd *cobra.Command, args []string) error {
	cfg := triageConfig(cmd)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading digest file: %w", err)
	}

	articles := digest.Parse(string(data))
	matched, unmatched := classify.Partition(articles, cfg.Keywords, cfg.Authors)

	outfile, _ := cmd.Flags().GetString("outfile")

	var buf bytes.Buffer
	switch cfg.Format {
	case types.FormatText:
		buf.WriteString(report.Render(matched, unmatched, palette(outfile, cfg.Format)))
	case types.FormatJSON:
		if err := report.WriteJSON(&buf, report.NewFile(matched, unmatched)); err != nil {
			return err
		}
	case types.FormatYAML:
		if err := report.WriteYAML(&buf, report.NewFile(matched, unmatched)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", cfg.Format)
	}

	// Files get the report as-is: text carries no trailing newline, the
	// json/yaml encoders emit their own.
	if outfile != "" {
		if err := os.WriteFile(outfile, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		return nil
	}

	// On stdout only text needs a terminating newline.
	if cfg.Format == types.FormatText {
		buf.WriteByte('\n')
	}
	fmt.Print(buf.String())
	return nil
}

// triageConfig merges flags with config-file values: an explicitly set flag
// wins, otherwise the config file supplies the filter terms.
func triageConfig(cmd *cobra.Command) types.TriageConfig {
	keywords, _ := cmd.Flags().GetStringSlice("keywords")
	if !cmd.Flags().Changed("keywords") {
		keywords = viper.GetStringSlice("keywords")
	}
	authors, _ := cmd.Flags().GetStringSlice("authors")
	if !cmd.Flags().Changed("authors") {
		authors = viper.GetStringSlice("authors")
	}
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = viper.GetString("format")
	}
	if format == "" {
		format = string(types.FormatText)
	}

	return types.TriageConfig{
		Keywords: keywords,
		Authors:  authors,
		Format:   types.ReportFormat(format),
	}
}

// palette picks ANSI colors only for text reports going to an interactive
// terminal. Writing to a file always produces plain text.
func palette(outfile string, format types.ReportFormat) report.Palette {
	if outfile == "" && format == types.FormatText && isatty.IsTerminal(os.Stdout.Fd()) {
		return report.ANSI()
	}
	return report.Plain()
}
