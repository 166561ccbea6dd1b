package diag

import (
	"fmt"

	"github.com/simon-lentz/dynjson/location"
)

// IssueBuilder provides fluent construction of [Issue] values. It is the
// only valid construction path for Issue in production code; direct struct
// literal construction bypasses validity checks and will panic when the
// issue is collected.
type IssueBuilder struct {
	issue Issue
}

// NewIssue starts building an issue with its required fields.
//
// NewIssue panics if severity is out of range, code is zero, or message is
// empty — these are programmer errors, caught at construction time rather
// than deferred to [Collector.Collect].
func NewIssue(severity Severity, code Code, message string) *IssueBuilder {
	if severity > Warning {
		panic(fmt.Sprintf("diag.NewIssue: invalid severity %d", severity))
	}
	if code.IsZero() {
		panic("diag.NewIssue: zero code")
	}
	if message == "" {
		panic("diag.NewIssue: empty message")
	}
	return &IssueBuilder{issue: Issue{severity: severity, code: code, message: message}}
}

// WithSpan sets the source location.
func (b *IssueBuilder) WithSpan(span location.Span) *IssueBuilder {
	b.issue.span = span
	return b
}

// WithHint sets an optional resolution suggestion.
func (b *IssueBuilder) WithHint(hint string) *IssueBuilder {
	b.issue.hint = hint
	return b
}

// Build returns the constructed, valid Issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}
