package ticket

import "testing"

func TestExtract(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{
			name:  "Bare key",
			input: "ABC-123",
			want:  "ABC-123",
			found: true,
		},
		{
			name:  "First match wins",
			input: "ABC-1 and DEF-2",
			want:  "ABC-1",
			found: true,
		},
		{
			name:  "Key embedded in text",
			input: "fix login ABC-7703 redirect loop",
			want:  "ABC-7703",
			found: true,
		},
		{
			name:  "Lowercase key is not a match",
			input: "abc-123",
			want:  "",
			found: false,
		},
		{
			name:  "No ticket anywhere",
			input: "just-a-branch-name",
			want:  "",
			found: false,
		},
		{
			name:  "Empty string",
			input: "",
			want:  "",
			found: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := Extract(tc.input)
			if got != tc.want || found != tc.found {
				t.Errorf("Extract(%q) = (%q, %v), want (%q, %v)", tc.input, got, found, tc.want, tc.found)
			}
		})
	}
}

func TestExtractLoose(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{
			name:  "Feature prefix",
			input: "feature/ABC-123-description",
			want:  "ABC-123",
			found: true,
		},
		{
			name:  "Bugfix prefix lowercase key",
			input: "bugfix/xyz-456",
			want:  "XYZ-456",
			found: true,
		},
		{
			name:  "No prefix",
			input: "ABC-789",
			want:  "ABC-789",
			found: true,
		},
		{
			name:  "Full commit message",
			input: "Implemented caching for DATA-42 lookups",
			want:  "DATA-42",
			found: true,
		},
		{
			name:  "No ticket",
			input: "release/cleanup",
			want:  "",
			found: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := ExtractLoose(tc.input)
			if got != tc.want || found != tc.found {
				t.Errorf("ExtractLoose(%q) = (%q, %v), want (%q, %v)", tc.input, got, found, tc.want, tc.found)
			}
		})
	}
}

func TestFromBranch(t *testing.T) {
	testCases := []struct {
		name   string
		branch string
		want   string
		found  bool
	}{
		{
			name:   "Conventional feature branch",
			branch: "feature/ABC-123-add-login",
			want:   "ABC-123",
			found:  true,
		},
		{
			name:   "No slash means no suffix to search",
			branch: "ABC-123",
			want:   "",
			found:  false,
		},
		{
			name:   "Slash but no ticket",
			branch: "feature/add-login",
			want:   "",
			found:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := FromBranch(tc.branch)
			if got != tc.want || found != tc.found {
				t.Errorf("FromBranch(%q) = (%q, %v), want (%q, %v)", tc.branch, got, found, tc.want, tc.found)
			}
		})
	}
}
