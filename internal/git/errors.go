package git

import "errors"

var (
	ErrNotARepository     = errors.New("not a git repository")
	ErrBaseBranchNotFound = errors.New("base branch not found")
	ErrFetchFailed        = errors.New("fetch failed")
	ErrCommitNotFound     = errors.New("commit not found")
)
