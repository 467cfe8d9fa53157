package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVWriter writes analysis reports as CSV.
type CSVWriter struct{}

// Write outputs the analysis report as CSV. One row per branch; in verbose
// mode one additional row per unmerged commit.
func (w *CSVWriter) Write(report *AnalysisReport, options Options) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return w.render(out, report, options)
}

func (w *CSVWriter) render(out io.Writer, report *AnalysisReport, options Options) error {
	branches := limitTop(report.Branches, options.Top)
	writer := csv.NewWriter(out)

	headers := []string{"Branch", "CommitCount", "Contributors", "LastCommitAt"}
	if options.Verbose {
		headers = append(headers, "SHA", "AuthorName", "AuthorEmail", "Date", "Subject")
	}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, b := range branches {
		row := []string{
			b.Name,
			fmt.Sprintf("%d", b.CommitCount),
			strings.Join(b.ContributorNames(), "; "),
			b.LastCommitAt.Format(reportDateTimeLayout),
		}
		if options.Verbose {
			row = append(row, "", "", "", "", "")
		}
		if err := writer.Write(row); err != nil {
			return err
		}

		if !options.Verbose {
			continue
		}
		for _, c := range b.Commits {
			commitRow := []string{
				b.Name, "", "", "",
				c.SHA,
				c.Author.Name,
				c.Author.Email,
				c.When.Format(reportDateTimeLayout),
				c.Subject,
			}
			if err := writer.Write(commitRow); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
