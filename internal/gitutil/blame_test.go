package gitutil

import "testing"

const sampleBlame = `aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa 1 1 2
author Someone
author-mail <someone@example.com>
summary first commit
filename main.go
	package main
aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa 2 2

bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb 1 3 1
author Someone Else
summary second commit
filename main.go
	func main() {}
`

func TestParseBlame(t *testing.T) {
	annotation := parseBlame(sampleBlame)

	testCases := []struct {
		line  int
		want  string
		found bool
	}{
		{line: 0, want: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", found: true},
		{line: 1, want: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", found: true},
		{line: 2, want: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", found: true},
		{line: 3, found: false},
		{line: -1, found: false},
	}

	for _, tc := range testCases {
		got, found := annotation.LineRevision(tc.line)
		if got != tc.want || found != tc.found {
			t.Errorf("LineRevision(%d) = (%q, %v), want (%q, %v)", tc.line, got, found, tc.want, tc.found)
		}
	}
}
