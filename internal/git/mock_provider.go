package git

import "context"

// MockProvider is a test double for Provider.
// It allows tests to provide predefined branch and commit data without
// needing a real Git repository.
type MockProvider struct {
	BranchRefs  []BranchRef
	SkippedRefs []SkippedRef
	Unmerged    map[string][]CommitInfo // keyed by fully-qualified branch name
	Records     map[string]CommitInfo   // keyed by SHA
	FetchErr    error
	BranchesErr error
	UnmergedErr map[string]error

	FetchCalls int
}

// Fetch records the call and returns the predefined error, if any.
func (m *MockProvider) Fetch(_ context.Context) error {
	m.FetchCalls++
	return m.FetchErr
}

// Branches returns the predefined branch refs, skipped refs, or error.
func (m *MockProvider) Branches(_ context.Context, _ BranchScope) ([]BranchRef, []SkippedRef, error) {
	return m.BranchRefs, m.SkippedRefs, m.BranchesErr
}

// CommitsNotIn returns the predefined unmerged set for the branch.
func (m *MockProvider) CommitsNotIn(_ context.Context, branch, _ string) ([]CommitInfo, error) {
	if err := m.UnmergedErr[branch]; err != nil {
		return nil, err
	}
	return m.Unmerged[branch], nil
}

// Commit returns the predefined commit record for the SHA.
func (m *MockProvider) Commit(_ context.Context, sha string) (CommitInfo, error) {
	c, ok := m.Records[sha]
	if !ok {
		return CommitInfo{}, ErrCommitNotFound
	}
	return c, nil
}

// Compile-time interface conformance check.
var _ AncestryProvider = (*MockProvider)(nil)
