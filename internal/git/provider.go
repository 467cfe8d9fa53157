package git

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Provider implements AncestryProvider on top of a go-git repository.
type Provider struct {
	repo   *gogit.Repository
	remote string
}

// NewProvider opens the repository at path. The remote name is used by
// Fetch and for stripping remote prefixes from branch names.
func NewProvider(path, remote string) (*Provider, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotARepository, path, err)
	}
	if remote == "" {
		remote = "origin"
	}
	return &Provider{repo: repo, remote: remote}, nil
}

// Fetch updates remote-tracking refs from the configured remote.
// Already-up-to-date is success.
func (p *Provider) Fetch(ctx context.Context) error {
	err := p.repo.FetchContext(ctx, &gogit.FetchOptions{RemoteName: p.remote})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return nil
}

// Branches lists branch refs for the scope, each with its tip commit's
// committer timestamp. Symbolic refs and remote HEAD pointers are omitted;
// refs whose tip commit is missing from the object store are returned as
// skipped so the run can continue without them.
func (p *Provider) Branches(_ context.Context, scope BranchScope) ([]BranchRef, []SkippedRef, error) {
	refs, err := p.repo.References()
	if err != nil {
		return nil, nil, err
	}
	defer refs.Close()

	var branches []BranchRef
	var skipped []SkippedRef
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		isRemote := name.IsRemote()
		isLocal := name.IsBranch()
		if !isRemote && !isLocal {
			return nil
		}
		switch scope {
		case ScopeRemote:
			if !isRemote {
				return nil
			}
		case ScopeLocal:
			if !isLocal {
				return nil
			}
		}

		short := name.Short()
		if isRemote && strings.HasSuffix(short, "/HEAD") {
			return nil
		}

		commit, err := p.repo.CommitObject(ref.Hash())
		if err != nil {
			if errors.Is(err, plumbing.ErrObjectNotFound) {
				skipped = append(skipped, SkippedRef{
					Name: short,
					Err:  fmt.Errorf("%w: tip of %s: %w", ErrCommitNotFound, short, err),
				})
				return nil
			}
			return fmt.Errorf("tip of %s: %w", short, err)
		}

		remote := ""
		if isRemote {
			if idx := strings.IndexByte(short, '/'); idx > 0 {
				remote = short[:idx]
			}
		}

		branches = append(branches, BranchRef{
			Name:   short,
			Remote: remote,
			Hash:   ref.Hash().String(),
			TipAt:  commit.Committer.When,
		})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(branches, func(i, j int) bool {
		return branches[i].Name < branches[j].Name
	})
	return branches, skipped, nil
}

// CommitsNotIn returns the commits reachable from branch but not from base,
// newest first. Ancestry-based reachability is the only correct definition
// of "unmerged" under fast-forward and merge-commit strategies; squash
// merges leave the original commits unreachable from base even though their
// net change is present, which this query cannot distinguish.
func (p *Provider) CommitsNotIn(ctx context.Context, branch, base string) ([]CommitInfo, error) {
	branchHash, err := p.resolve(branch)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCommitNotFound, branch, err)
	}
	baseHash, err := p.resolve(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBaseBranchNotFound, base, err)
	}

	reachable, err := p.ancestors(baseHash)
	if err != nil {
		return nil, fmt.Errorf("%w: walking %s: %w", ErrCommitNotFound, base, err)
	}

	branchCommit, err := p.repo.CommitObject(branchHash)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCommitNotFound, branch, err)
	}

	var commits []CommitInfo
	iter := object.NewCommitPreorderIter(branchCommit, reachable, nil)
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		commits = append(commits, newCommitInfo(c))
		return nil
	})
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: walking %s: %w", ErrCommitNotFound, branch, err)
		}
		return nil, err
	}

	// The preorder walk is depth-first; re-sort into a deterministic
	// newest-first order.
	sort.Slice(commits, func(i, j int) bool {
		if !commits[i].When.Equal(commits[j].When) {
			return commits[i].When.After(commits[j].When)
		}
		return commits[i].SHA < commits[j].SHA
	})
	return commits, nil
}

// Commit returns the full commit record for one identifier.
func (p *Provider) Commit(_ context.Context, sha string) (CommitInfo, error) {
	c, err := p.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return CommitInfo{}, fmt.Errorf("%w: %s: %w", ErrCommitNotFound, sha, err)
	}
	return newCommitInfo(c), nil
}

// ancestors collects every commit reachable from h into a set.
func (p *Provider) ancestors(h plumbing.Hash) (map[plumbing.Hash]bool, error) {
	commit, err := p.repo.CommitObject(h)
	if err != nil {
		return nil, err
	}
	seen := make(map[plumbing.Hash]bool)
	iter := object.NewCommitPreorderIter(commit, nil, nil)
	err = iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seen, nil
}

func (p *Provider) resolve(rev string) (plumbing.Hash, error) {
	h, err := p.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return *h, nil
}

func newCommitInfo(c *object.Commit) CommitInfo {
	return CommitInfo{
		SHA:     c.Hash.String(),
		When:    c.Author.When,
		Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
		Subject: firstLine(c.Message),
	}
}
