package output

import (
	"fmt"
	"io"
)

// MarkdownWriter writes analysis reports as Markdown.
type MarkdownWriter struct{}

// Write outputs the analysis report as a Markdown document.
func (w *MarkdownWriter) Write(report *AnalysisReport, options Options) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return w.render(out, report, options)
}

func (w *MarkdownWriter) render(out io.Writer, report *AnalysisReport, options Options) error {
	branches := limitTop(report.Branches, options.Top)

	fmt.Fprintf(out, "# Unmerged Branches\n\n")
	fmt.Fprintf(out, "- **Repository**: %s\n", report.RepoPath)
	fmt.Fprintf(out, "- **Base branch**: %s\n", report.BaseBranch)
	fmt.Fprintf(out, "- **Window**: last %d days\n", report.WindowDays)
	fmt.Fprintf(out, "- **Generated**: %s\n", report.GeneratedAt.Format(reportDateLayout))
	fmt.Fprintf(out, "- **Total unmerged branches**: %d\n\n", len(report.Branches))

	if len(branches) == 0 {
		fmt.Fprintln(out, "No unmerged branches found.")
		return nil
	}

	fmt.Fprintln(out, "| Branch | Commits | Contributors | Last Commit |")
	fmt.Fprintln(out, "|--------|---------|--------------|-------------|")
	for _, b := range branches {
		fmt.Fprintf(out, "| %s | %d | %s | %s |\n",
			b.Name,
			b.CommitCount,
			contributorNames(b),
			b.LastCommitAt.Format(reportDateTimeLayout),
		)
	}

	if !options.Verbose {
		return nil
	}

	for _, b := range branches {
		if len(b.Commits) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n## %s\n\n", b.Name)
		fmt.Fprintln(out, "| Hash | Author | Date | Subject |")
		fmt.Fprintln(out, "|------|--------|------|---------|")
		for _, c := range b.Commits {
			fmt.Fprintf(out, "| %s | %s | %s | %s |\n",
				c.ShortSHA(),
				c.Author.String(),
				c.When.Format(reportDateTimeLayout),
				c.Subject,
			)
		}
	}

	return nil
}
