// Package resolve determines which commit hash a user-triggered action
// refers to, given either a log-level selection or a per-line annotation.
package resolve

// Annotation maps line numbers to the revision that last touched them.
type Annotation interface {
	// LineRevision returns the revision bound to a zero-based line number,
	// or false when the line has no known revision.
	LineRevision(line int) (string, bool)
}

// Commit resolves the commit hash in scope for a trigger. Line-level context
// is more specific than a log-level selection, so a non-negative line number
// always resolves through the annotation; the selection is only consulted
// when there is no line context. A negative line means "no line context".
func Commit(line int, selection []string, annotation Annotation) (string, bool) {
	if line >= 0 {
		if annotation == nil {
			return "", false
		}
		return annotation.LineRevision(line)
	}

	if len(selection) > 0 {
		return selection[0], true
	}

	return "", false
}
