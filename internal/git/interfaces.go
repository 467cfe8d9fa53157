package git

import "context"

// AncestryProvider answers queries over a repository's commit graph.
// This abstraction allows the analysis pipeline to be tested against an
// in-memory fake. Fetch is the only operation that touches external state;
// everything else is a read-only query against the object and ref stores.
type AncestryProvider interface {
	// Fetch updates remote-tracking refs from the configured remote.
	Fetch(ctx context.Context) error

	// Branches returns all branch references matching the scope, each
	// paired with its tip commit's timestamp. Refs whose tip commit
	// cannot be resolved are reported in the skipped slice rather than
	// failing the enumeration.
	Branches(ctx context.Context, scope BranchScope) ([]BranchRef, []SkippedRef, error)

	// CommitsNotIn returns the commits reachable from branch but not from
	// base, newest first. A fully merged branch yields an empty slice,
	// not an error.
	CommitsNotIn(ctx context.Context, branch, base string) ([]CommitInfo, error)

	// Commit returns the full commit record for one identifier.
	Commit(ctx context.Context, sha string) (CommitInfo, error)
}

// Compile-time interface conformance check.
var _ AncestryProvider = (*Provider)(nil)
