package git

import (
	"strings"
	"time"
)

// BranchScope selects which refs Branches returns.
type BranchScope int

const (
	ScopeRemote BranchScope = iota
	ScopeLocal
	ScopeAll
)

// String returns a string representation of the branch scope.
func (s BranchScope) String() string {
	switch s {
	case ScopeRemote:
		return "remote"
	case ScopeLocal:
		return "local"
	case ScopeAll:
		return "all"
	default:
		return "unknown"
	}
}

// BranchRef pairs a branch name with its resolved tip commit.
// Name is the fully-qualified short form (e.g. "origin/feature-x" for a
// remote-tracking branch, "feature-x" for a local one) and is unique
// within one analysis run.
type BranchRef struct {
	Name   string
	Remote string // remote prefix (e.g. "origin"), empty for local branches
	Hash   string
	TipAt  time.Time // committer timestamp of the tip commit
}

// ShortName returns the branch name without its remote prefix.
func (b BranchRef) ShortName() string {
	if b.Remote == "" {
		return b.Name
	}
	return strings.TrimPrefix(b.Name, b.Remote+"/")
}

// SkippedRef records a branch ref that could not be included in an
// enumeration, typically because its tip commit is missing from the
// object store (partial clone, pruned objects).
type SkippedRef struct {
	Name string
	Err  error
}

// CommitInfo represents minimal information about a Git commit.
// Commits are value objects; they never mutate once read.
type CommitInfo struct {
	SHA     string
	When    time.Time // author timestamp, timezone-aware
	Author  AuthorInfo
	Subject string // first line of the commit message
}

// ShortSHA returns an abbreviated commit identifier for display.
func (c CommitInfo) ShortSHA() string {
	if len(c.SHA) < 8 {
		return c.SHA
	}
	return c.SHA[:8]
}

// AuthorInfo represents commit author information. Two authors are the
// same contributor only when both name and email match exactly; differently
// cased emails count as distinct contributors.
type AuthorInfo struct {
	Name  string
	Email string
}

// String renders the author as "Name <email>".
func (a AuthorInfo) String() string {
	return a.Name + " <" + a.Email + ">"
}

// firstLine extracts the subject line from a full commit message.
func firstLine(message string) string {
	if idx := strings.IndexAny(message, "\r\n"); idx != -1 {
		return message[:idx]
	}
	return message
}
