package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// JSONWriter writes analysis reports as JSON.
type JSONWriter struct{}

// JSONReport is the JSON output structure for an analysis run.
type JSONReport struct {
	RepoPath      string       `json:"repo"`
	BaseBranch    string       `json:"baseBranch"`
	WindowDays    int          `json:"windowDays"`
	GeneratedAt   string       `json:"generatedAt"`
	TotalBranches int          `json:"totalBranches"`
	Branches      []JSONBranch `json:"branches"`
}

// JSONBranch is the JSON output structure for a single branch.
type JSONBranch struct {
	Name         string            `json:"name"`
	FullName     string            `json:"fullName"`
	CommitCount  int               `json:"commitCount"`
	Contributors []JSONContributor `json:"contributors"`
	LastCommitAt string            `json:"lastCommitAt"`
	Commits      []JSONCommit      `json:"commits,omitempty"`
}

// JSONContributor is a single (name, email) contributor pair.
type JSONContributor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// JSONCommit is the JSON output structure for a single unmerged commit.
type JSONCommit struct {
	SHA         string `json:"sha"`
	AuthorName  string `json:"authorName"`
	AuthorEmail string `json:"authorEmail"`
	Date        string `json:"date"`
	Subject     string `json:"subject"`
}

// Write outputs the analysis report as JSON.
func (w *JSONWriter) Write(report *AnalysisReport, options Options) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return w.render(out, report, options)
}

func (w *JSONWriter) render(out io.Writer, report *AnalysisReport, options Options) error {
	branches := limitTop(report.Branches, options.Top)

	jsonBranches := make([]JSONBranch, len(branches))
	for i, b := range branches {
		jb := JSONBranch{
			Name:         b.Name,
			FullName:     b.FullName,
			CommitCount:  b.CommitCount,
			LastCommitAt: b.LastCommitAt.Format(time.RFC3339),
			Contributors: make([]JSONContributor, len(b.Contributors)),
		}
		for j, c := range b.Contributors {
			jb.Contributors[j] = JSONContributor{Name: c.Name, Email: c.Email}
		}
		for _, c := range b.Commits {
			jb.Commits = append(jb.Commits, JSONCommit{
				SHA:         c.SHA,
				AuthorName:  c.Author.Name,
				AuthorEmail: c.Author.Email,
				Date:        c.When.Format(time.RFC3339),
				Subject:     c.Subject,
			})
		}
		jsonBranches[i] = jb
	}

	jsonReport := JSONReport{
		RepoPath:      report.RepoPath,
		BaseBranch:    report.BaseBranch,
		WindowDays:    report.WindowDays,
		GeneratedAt:   report.GeneratedAt.Format(time.RFC3339),
		TotalBranches: len(report.Branches),
		Branches:      jsonBranches,
	}

	data, err := json.MarshalIndent(jsonReport, "", "  ")
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}
