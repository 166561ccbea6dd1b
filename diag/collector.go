package diag

import (
	"fmt"
	"slices"
	"sync"

	"github.com/simon-lentz/dynjson/location"
)

// Collector accumulates Issues and produces a sorted, immutable [Result].
// It is safe for concurrent use.
//
// Limit behavior: once the configured limit is reached, further issues are
// counted as dropped rather than stored; use [Result.LimitReached] to
// detect truncation.
type Collector struct {
	mu           sync.Mutex
	issues       []Issue
	limit        int
	limitReached bool
	droppedCount int
}

// NewCollector creates a Collector with an optional issue limit. A limit of
// 0 (or negative) means unlimited.
func NewCollector(limit int) *Collector {
	if limit < 0 {
		limit = 0
	}
	return &Collector{limit: limit}
}

// Collect adds an issue. Panics if issue is zero or invalid: use [NewIssue]
// to construct valid issues.
func (c *Collector) Collect(issue Issue) {
	if issue.IsZero() {
		panic("diag.Collector.Collect: zero-value Issue")
	}
	if !issue.IsValid() {
		panic(fmt.Sprintf("diag.Collector.Collect: invalid Issue (code=%s)", issue.Code()))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.limit > 0 && len(c.issues) >= c.limit {
		c.limitReached = true
		c.droppedCount++
		return
	}
	c.issues = append(c.issues, issue)
}

// Result produces a sorted, independent snapshot of the collected issues.
func (c *Collector) Result() Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	sorted := make([]Issue, len(c.issues))
	copy(sorted, c.issues)
	slices.SortFunc(sorted, compareIssues)

	return newResult(sorted, c.limit, c.limitReached, c.droppedCount)
}

// compareIssues orders issues by span, then code, then severity, then
// message — a total order, so Collector.Result is deterministic regardless
// of collection order.
func compareIssues(a, b Issue) int {
	if cmp := location.Compare(a.span, b.span); cmp != 0 {
		return cmp
	}
	if a.code.value != b.code.value {
		if a.code.value < b.code.value {
			return -1
		}
		return 1
	}
	if a.severity != b.severity {
		if a.severity < b.severity {
			return -1
		}
		return 1
	}
	if a.message != b.message {
		if a.message < b.message {
			return -1
		}
		return 1
	}
	return 0
}
