package output

import (
	"io"
	"os"
	"strings"

	"github.com/masmgr/git-unmerged-go/internal/aggregation"
)

const (
	reportDateLayout     = "2006-01-02"
	reportDateTimeLayout = "2006-01-02 15:04:05 -0700"
)

func limitTop[T any](items []T, top int) []T {
	if top <= 0 || top >= len(items) {
		return items
	}
	return items[:top]
}

// truncate shortens s to at most maxLen runes, ending in "..." when cut.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

func contributorNames(report aggregation.BranchReport) string {
	return strings.Join(report.ContributorNames(), ", ")
}

func contributorList(report aggregation.BranchReport) string {
	parts := make([]string, len(report.Contributors))
	for i, c := range report.Contributors {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
