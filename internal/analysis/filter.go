package analysis

import (
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/masmgr/git-unmerged-go/internal/git"
)

// Filter decides which branches are eligible for analysis.
type Filter struct {
	Now           time.Time
	WindowDays    int
	IgnorePattern string   // literal substring match, case-sensitive; empty disables
	IgnoreGlobs   []string // doublestar patterns matched against the short name
	Base          string   // fully-qualified base branch name
	BaseShort     string   // base branch name without remote prefix
}

// Eligible reports whether the branch should be analyzed. A branch passes
// when its tip is within WindowDays of Now (inclusive lower bound at
// exactly WindowDays ago; WindowDays 0 means the bound sits at Now), its
// name survives the ignore filters, and it is not the base branch itself.
func (f Filter) Eligible(branch git.BranchRef) bool {
	cutoff := f.Now.AddDate(0, 0, -f.WindowDays)
	if branch.TipAt.Before(cutoff) {
		return false
	}
	if f.IgnorePattern != "" && strings.Contains(branch.Name, f.IgnorePattern) {
		return false
	}
	for _, pattern := range f.IgnoreGlobs {
		if matched, _ := doublestar.Match(pattern, branch.ShortName()); matched {
			return false
		}
	}
	if branch.Name == f.Base {
		return false
	}
	if f.BaseShort != "" && branch.ShortName() == f.BaseShort {
		return false
	}
	return true
}
