package resolve

import "testing"

type mapAnnotation map[int]string

func (m mapAnnotation) LineRevision(line int) (string, bool) {
	revision, ok := m[line]
	return revision, ok
}

func TestCommit(t *testing.T) {
	annotation := mapAnnotation{4: "abc123"}

	testCases := []struct {
		name       string
		line       int
		selection  []string
		annotation Annotation
		want       string
		found      bool
	}{
		{
			name:       "Line context wins over log selection",
			line:       4,
			selection:  []string{"fff999"},
			annotation: annotation,
			want:       "abc123",
			found:      true,
		},
		{
			name:      "Log selection used without line context",
			line:      -1,
			selection: []string{"fff999", "eee888"},
			want:      "fff999",
			found:     true,
		},
		{
			name:       "Line context with no bound revision resolves nothing",
			line:       7,
			selection:  []string{"fff999"},
			annotation: annotation,
			want:       "",
			found:      false,
		},
		{
			name:  "Line context without annotation resolves nothing",
			line:  4,
			want:  "",
			found: false,
		},
		{
			name:  "No sources at all",
			line:  -1,
			want:  "",
			found: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := Commit(tc.line, tc.selection, tc.annotation)
			if got != tc.want || found != tc.found {
				t.Errorf("Commit(%d, %v) = (%q, %v), want (%q, %v)",
					tc.line, tc.selection, got, found, tc.want, tc.found)
			}
		})
	}
}
