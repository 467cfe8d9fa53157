package output

import (
	"time"

	"github.com/masmgr/git-unmerged-go/internal/aggregation"
)

// Compile-time interface conformance checks.
var (
	_ ReportWriter = (*ConsoleWriter)(nil)
	_ ReportWriter = (*JSONWriter)(nil)
	_ ReportWriter = (*CSVWriter)(nil)
	_ ReportWriter = (*MarkdownWriter)(nil)
)

// Format represents the output format type.
type Format string

const (
	FormatConsole  Format = "console"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps a format flag value to a Format, defaulting to console.
func ParseFormat(s string) Format {
	switch s {
	case "json":
		return FormatJSON
	case "csv":
		return FormatCSV
	case "markdown", "md":
		return FormatMarkdown
	default:
		return FormatConsole
	}
}

// Options controls output behavior.
type Options struct {
	Format     Format
	Top        int
	OutputPath string
	Verbose    bool
}

// AnalysisReport holds the results of one unmerged-branch analysis run.
type AnalysisReport struct {
	RepoPath    string
	BaseBranch  string
	WindowDays  int
	GeneratedAt time.Time
	Branches    []aggregation.BranchReport
}

// ReportWriter writes analysis reports.
type ReportWriter interface {
	Write(report *AnalysisReport, options Options) error
}

// NewReportWriter creates a report writer for the specified format.
func NewReportWriter(format Format) ReportWriter {
	switch format {
	case FormatJSON:
		return &JSONWriter{}
	case FormatCSV:
		return &CSVWriter{}
	case FormatMarkdown:
		return &MarkdownWriter{}
	default:
		return &ConsoleWriter{}
	}
}
