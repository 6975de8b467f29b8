package polysolve

import (
	"fmt"
	"io"
)

// StepLine renders a step header as "Step n : message".
func StepLine(s Step) string {
	return fmt.Sprintf("Step %d : %s", s.Number, s.Message)
}

// TraceLines returns the printable trace of r: each step header followed by
// its details, then the "Solution: ..." line.
func TraceLines(r *Result) []string {
	var lines []string
	for _, s := range r.Steps {
		lines = append(lines, StepLine(s))
		lines = append(lines, s.Details...)
	}
	return append(lines, "Solution: "+r.Solution.String())
}

// WriteTrace writes TraceLines(r) to w, one per line.
func WriteTrace(w io.Writer, r *Result) error {
	for _, l := range TraceLines(r) {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
