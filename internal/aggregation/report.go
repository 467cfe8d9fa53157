package aggregation

import (
	"time"

	"github.com/masmgr/git-unmerged-go/internal/git"
)

// BranchReport summarizes the unmerged commits of one branch relative to
// the base branch. It is derived during aggregation and handed straight to
// a report writer; nothing persists it across runs.
type BranchReport struct {
	Name         string // branch name without remote prefix
	FullName     string // fully-qualified branch name
	CommitCount  int
	Contributors []git.AuthorInfo // distinct (name, email) pairs, first-seen order
	LastCommitAt time.Time
	Commits      []git.CommitInfo // populated only in verbose mode, newest first
}

// ContributorNames returns just the contributor names, in order.
func (r BranchReport) ContributorNames() []string {
	names := make([]string, len(r.Contributors))
	for i, c := range r.Contributors {
		names[i] = c.Name
	}
	return names
}

// Summarize derives a BranchReport from a branch's unmerged commit set.
// The set must be ordered newest first. Contributors are de-duplicated by
// exact (name, email) equality; the same person under two differently
// cased emails counts as two contributors. An empty set yields a report
// with CommitCount 0, which the caller is expected to discard.
func Summarize(branch git.BranchRef, commits []git.CommitInfo, verbose bool) BranchReport {
	report := BranchReport{
		Name:        branch.ShortName(),
		FullName:    branch.Name,
		CommitCount: len(commits),
	}

	seen := make(map[git.AuthorInfo]struct{}, len(commits))
	for _, c := range commits {
		if _, ok := seen[c.Author]; !ok {
			seen[c.Author] = struct{}{}
			report.Contributors = append(report.Contributors, c.Author)
		}
		if c.When.After(report.LastCommitAt) {
			report.LastCommitAt = c.When
		}
	}

	if verbose {
		report.Commits = commits
	}
	return report
}
