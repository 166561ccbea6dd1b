package diag

import "github.com/simon-lentz/dynjson/location"

// Issue is a single diagnostic collected by an Adapter. It is immutable
// after construction; build one with [NewIssue].
//
// Direct struct literal construction bypasses validity checks and will
// panic when the issue is collected via [Collector.Collect].
type Issue struct {
	span     location.Span
	severity Severity
	code     Code
	message  string
	hint     string
}

// Severity returns the issue's severity level.
func (i Issue) Severity() Severity {
	return i.severity
}

// Code returns the issue's stable programmatic identifier.
func (i Issue) Code() Code {
	return i.code
}

// Message returns the human-readable description. It never embeds location
// information; use [Issue.Span] for that.
func (i Issue) Message() string {
	return i.message
}

// Span returns the source location, or the zero Span if none was set.
func (i Issue) Span() location.Span {
	return i.span
}

// Hint returns the optional resolution suggestion.
func (i Issue) Hint() string {
	return i.hint
}

// HasSpan reports whether the issue carries a non-zero span.
func (i Issue) HasSpan() bool {
	return !i.span.IsZero()
}

// IsZero reports whether the issue is a zero value.
func (i Issue) IsZero() bool {
	return i.code.IsZero() && i.message == "" && i.span.IsZero()
}

// IsValid reports whether the issue has the minimum required fields set.
// Production code never needs to call this directly: [NewIssue] and
// [IssueBuilder.Build] already guarantee it.
func (i Issue) IsValid() bool {
	return !i.code.IsZero() && i.message != "" && i.severity <= Warning
}
