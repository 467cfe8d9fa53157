package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/masmgr/git-unmerged-go/internal/aggregation"
)

// ConsoleWriter writes analysis reports to the console.
type ConsoleWriter struct{}

// Write outputs the analysis report as a colored table, or as per-branch
// detail blocks in verbose mode.
func (w *ConsoleWriter) Write(report *AnalysisReport, options Options) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return w.render(out, report, options)
}

func (w *ConsoleWriter) render(out io.Writer, report *AnalysisReport, options Options) error {
	branches := limitTop(report.Branches, options.Top)

	heading := styled(out, color.FgGreen)
	heading.Fprintf(out, "Found %d branches NOT merged into %s\n", len(report.Branches), report.BaseBranch)
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Window: last %d days\n\n", report.WindowDays)

	if len(branches) == 0 {
		fmt.Fprintln(out, "No unmerged branches found.")
		return nil
	}

	if options.Verbose {
		w.renderDetail(out, report, branches)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Branch\tCommits\tContributors\tLast Commit")
	for _, b := range branches {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			b.Name,
			b.CommitCount,
			truncate(contributorNames(b), 40),
			b.LastCommitAt.Format(reportDateTimeLayout),
		)
	}
	tw.Flush()

	fmt.Fprintf(out, "\nTotal unmerged branches: %d\n", len(report.Branches))
	return nil
}

func (w *ConsoleWriter) renderDetail(out io.Writer, report *AnalysisReport, branches []aggregation.BranchReport) {
	rule := strings.Repeat("=", 100)
	branchHeading := styled(out, color.FgGreen, color.Underline)

	for _, b := range branches {
		fmt.Fprintln(out, rule)
		branchHeading.Fprintf(out, "Branch: %s\n", b.Name)
		fmt.Fprintf(out, "Unmerged commits: %d\n", b.CommitCount)
		fmt.Fprintf(out, "Last commit date: %s\n", b.LastCommitAt.Format(reportDateTimeLayout))
		fmt.Fprintf(out, "Contributors: %s\n", contributorList(b))

		if len(b.Commits) == 0 {
			continue
		}

		fmt.Fprintf(out, "\nMissing commits against %s:\n", report.BaseBranch)
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  Hash\tAuthor\tDate\tSubject")
		for _, c := range b.Commits {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
				c.ShortSHA(),
				truncate(c.Author.String(), 30),
				c.When.Format(reportDateTimeLayout),
				truncate(c.Subject, 40),
			)
		}
		tw.Flush()
	}

	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "\nTotal unmerged branches: %d\n", len(report.Branches))
}

// styled builds a color whose escape sequences only reach the terminal;
// redirected output stays plain regardless of the global color state.
func styled(out io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if f, ok := out.(*os.File); !ok || f != os.Stdout {
		c.DisableColor()
	}
	return c
}
