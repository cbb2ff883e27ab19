package types

// ReportFormat selects the report output format.
type ReportFormat string

const (
	FormatText ReportFormat = "text"
	FormatJSON ReportFormat = "json"
	FormatYAML ReportFormat = "yaml"
)

// TriageConfig holds the filter and output settings for one run.
// Values come from flags, with config-file fallback for the filter terms.
type TriageConfig struct {
	// Keywords are matched case-insensitively against article titles.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Authors are matched case-insensitively against author names.
	Authors []string `json:"authors" yaml:"authors"`

	// Format selects the report format: text, json, or yaml.
	Format ReportFormat `json:"format" yaml:"format"`
}
