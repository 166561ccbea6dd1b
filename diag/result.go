package diag

import (
	"fmt"
	"strings"
)

// Result is an immutable snapshot of the issues collected for one parse.
// Obtain one via [Collector.Result] or [OK] for the empty success case.
type Result struct {
	issues       []Issue
	limit        int
	limitReached bool
	droppedCount int
}

func newResult(issues []Issue, limit int, limitReached bool, droppedCount int) Result {
	return Result{issues: issues, limit: limit, limitReached: limitReached, droppedCount: droppedCount}
}

// OK returns a Result representing success (no issues).
func OK() Result {
	return newResult(nil, 0, false, 0)
}

// OK reports whether no Fatal or Error issue is present.
func (r Result) OK() bool {
	for _, issue := range r.issues {
		if issue.Severity().IsFailure() {
			return false
		}
	}
	return true
}

// HasErrors reports whether any Fatal or Error issue is present.
func (r Result) HasErrors() bool {
	return !r.OK()
}

// Len returns the number of issues.
func (r Result) Len() int {
	return len(r.issues)
}

// LimitReached reports whether the collection limit was reached.
func (r Result) LimitReached() bool {
	return r.limitReached
}

// DroppedCount returns how many issues were dropped after hitting the limit.
func (r Result) DroppedCount() int {
	return r.droppedCount
}

// Issues returns a copy of every collected issue.
func (r Result) Issues() []Issue {
	if len(r.issues) == 0 {
		return nil
	}
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return out
}

// Messages returns message strings from Fatal and Error issues, for
// quick surfacing in logs or a returned error's Cause.
func (r Result) Messages() []string {
	var out []string
	for _, issue := range r.issues {
		if issue.Severity().IsFailure() {
			out = append(out, issue.Message())
		}
	}
	return out
}

// String returns "OK" when r.OK(), otherwise one line per Fatal/Error issue.
func (r Result) String() string {
	if r.OK() {
		return "OK"
	}
	var sb strings.Builder
	for _, issue := range r.issues {
		if issue.Severity().IsFailure() {
			fmt.Fprintf(&sb, "%s: %s\n", issue.Code(), issue.Message())
		}
	}
	return sb.String()
}
