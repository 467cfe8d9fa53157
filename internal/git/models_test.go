package git

import "testing"

func TestBranchRef_ShortName(t *testing.T) {
	tests := []struct {
		name     string
		branch   BranchRef
		expected string
	}{
		{name: "Remote branch", branch: BranchRef{Name: "origin/feature-x", Remote: "origin"}, expected: "feature-x"},
		{name: "Remote branch with slashes", branch: BranchRef{Name: "origin/hotfix/bug-123", Remote: "origin"}, expected: "hotfix/bug-123"},
		{name: "Local branch", branch: BranchRef{Name: "feature/x"}, expected: "feature/x"},
		{name: "Other remote", branch: BranchRef{Name: "upstream/dev", Remote: "upstream"}, expected: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.branch.ShortName(); got != tt.expected {
				t.Errorf("ShortName() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestCommitInfo_ShortSHA(t *testing.T) {
	tests := []struct {
		name     string
		sha      string
		expected string
	}{
		{name: "Full hash", sha: "0123456789abcdef0123456789abcdef01234567", expected: "01234567"},
		{name: "Short input kept", sha: "abc", expected: "abc"},
		{name: "Empty", sha: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CommitInfo{SHA: tt.sha}
			if got := c.ShortSHA(); got != tt.expected {
				t.Errorf("ShortSHA() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestAuthorInfo_String(t *testing.T) {
	a := AuthorInfo{Name: "Alice", Email: "alice@example.com"}
	want := "Alice <alice@example.com>"
	if got := a.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestBranchScope_String(t *testing.T) {
	tests := []struct {
		scope    BranchScope
		expected string
	}{
		{ScopeRemote, "remote"},
		{ScopeLocal, "local"},
		{ScopeAll, "all"},
		{BranchScope(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.scope.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{name: "Single line", message: "fix bug", expected: "fix bug"},
		{name: "Multi-line LF", message: "subject\n\nbody", expected: "subject"},
		{name: "Multi-line CRLF", message: "subject\r\nbody", expected: "subject"},
		{name: "Empty", message: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstLine(tt.message); got != tt.expected {
				t.Errorf("firstLine(%q) = %q, expected %q", tt.message, got, tt.expected)
			}
		})
	}
}
