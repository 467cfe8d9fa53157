package analysis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/masmgr/git-unmerged-go/internal/aggregation"
	"github.com/masmgr/git-unmerged-go/internal/git"
)

// Options holds one run's configuration. It is constructed once per run
// and passed by value; the analyzer never reads ambient state.
type Options struct {
	BaseBranch    string
	Remote        string
	IgnorePattern string
	IgnoreGlobs   []string
	WindowDays    int
	Fetch         bool
	Verbose       bool
	Jobs          int       // per-branch query concurrency; <1 means sequential
	Now           time.Time // zero means time.Now()
}

// Warning records a non-fatal condition encountered during a run: a failed
// fetch, or a branch that had to be skipped.
type Warning struct {
	Branch string // empty for run-level warnings
	Err    error
}

// String renders the warning for display.
func (w Warning) String() string {
	if w.Branch == "" {
		return w.Err.Error()
	}
	return fmt.Sprintf("skipped %s: %v", w.Branch, w.Err)
}

// Result is the outcome of one analysis run.
type Result struct {
	Reports  []aggregation.BranchReport
	Warnings []Warning
}

// Analyzer finds branches with commits not reachable from the base branch.
type Analyzer struct {
	provider git.AncestryProvider
	opts     Options
}

// New creates an analyzer over the given ancestry provider.
func New(provider git.AncestryProvider, opts Options) *Analyzer {
	return &Analyzer{provider: provider, opts: opts}
}

// Run executes one analysis pass: optional fetch, branch enumeration and
// filtering, per-branch unmerged-set computation, and aggregation. The
// returned reports are sorted by most recent commit timestamp descending,
// ties broken by branch name ascending.
//
// A failed fetch degrades to a warning and the run proceeds on local refs.
// A branch whose history cannot be resolved is skipped with a warning; an
// unresolvable base branch aborts the run.
func (a *Analyzer) Run(ctx context.Context) (*Result, error) {
	now := a.opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	result := &Result{}

	// Fetch must complete before any ancestry read starts; it is the only
	// operation that mutates ref state.
	if a.opts.Fetch {
		if err := a.provider.Fetch(ctx); err != nil {
			result.Warnings = append(result.Warnings, Warning{Err: err})
		}
	}

	branches, skipped, err := a.provider.Branches(ctx, git.ScopeRemote)
	if err != nil {
		return nil, err
	}
	for _, s := range skipped {
		result.Warnings = append(result.Warnings, Warning{Branch: s.Name, Err: s.Err})
	}

	filter := Filter{
		Now:           now,
		WindowDays:    a.opts.WindowDays,
		IgnorePattern: a.opts.IgnorePattern,
		IgnoreGlobs:   a.opts.IgnoreGlobs,
		Base:          a.opts.BaseBranch,
		BaseShort:     stripRemote(a.opts.BaseBranch, a.opts.Remote),
	}

	var eligible []git.BranchRef
	for _, b := range branches {
		if filter.Eligible(b) {
			eligible = append(eligible, b)
		}
	}

	type branchResult struct {
		report aggregation.BranchReport
		empty  bool
		err    error
	}
	results := make([]branchResult, len(eligible))

	jobs := a.opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	// Branch analyses are independent read-only queries, so they may run
	// concurrently. Results land in an indexed slice and are re-sorted
	// below, keeping the final order deterministic.
	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup
	for i, b := range eligible {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, b git.BranchRef) {
			defer wg.Done()
			defer func() { <-sem }()

			commits, err := a.provider.CommitsNotIn(ctx, b.Name, a.opts.BaseBranch)
			if err != nil {
				results[i] = branchResult{err: err}
				return
			}
			if len(commits) == 0 {
				// Fully merged: no actionable signal, excluded from the report.
				results[i] = branchResult{empty: true}
				return
			}
			results[i] = branchResult{report: aggregation.Summarize(b, commits, a.opts.Verbose)}
		}(i, b)
	}
	wg.Wait()

	for i, r := range results {
		switch {
		case r.err != nil:
			if errors.Is(r.err, git.ErrBaseBranchNotFound) {
				return nil, r.err
			}
			if errors.Is(r.err, git.ErrCommitNotFound) {
				result.Warnings = append(result.Warnings, Warning{Branch: eligible[i].Name, Err: r.err})
				continue
			}
			return nil, r.err
		case r.empty:
			continue
		default:
			result.Reports = append(result.Reports, r.report)
		}
	}

	sort.Slice(result.Reports, func(i, j int) bool {
		ri, rj := result.Reports[i], result.Reports[j]
		if !ri.LastCommitAt.Equal(rj.LastCommitAt) {
			return ri.LastCommitAt.After(rj.LastCommitAt)
		}
		return ri.Name < rj.Name
	})

	return result, nil
}

func stripRemote(name, remote string) string {
	if remote == "" {
		return name
	}
	return strings.TrimPrefix(name, remote+"/")
}
