package docscheck

import "fmt"

// BuildError describes a single documentation build violation. Checks
// collect BuildErrors instead of aborting so that one run reports every
// problem found.
type BuildError struct {
	// FilePath is the file the violation was found in.
	FilePath string

	// LineNo is the 1-based line of the violation, or zero when the
	// finding is not tied to a specific line.
	LineNo int

	// Message describes the violation and how to fix it.
	Message string
}

// String renders the error in the conventional path:line: message form.
func (e BuildError) String() string {
	if e.LineNo > 0 {
		return fmt.Sprintf("%s:%d: %s", e.FilePath, e.LineNo, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}
