package diag

import (
	"testing"

	"github.com/simon-lentz/dynjson/location"
)

func TestNewIssue_Build(t *testing.T) {
	span := location.PointWithByte(location.NewSourceID("s"), 1, 1, 0)
	issue := NewIssue(Error, E_ADAPTER_PARSE, "bad input").WithSpan(span).WithHint("check syntax").Build()

	if issue.Severity() != Error {
		t.Errorf("Severity() = %v; want Error", issue.Severity())
	}
	if issue.Code() != E_ADAPTER_PARSE {
		t.Errorf("Code() = %v; want E_ADAPTER_PARSE", issue.Code())
	}
	if issue.Message() != "bad input" {
		t.Errorf("Message() = %q; want %q", issue.Message(), "bad input")
	}
	if issue.Hint() != "check syntax" {
		t.Errorf("Hint() = %q; want %q", issue.Hint(), "check syntax")
	}
	if !issue.HasSpan() {
		t.Error("issue built WithSpan should report HasSpan")
	}
	if !issue.IsValid() {
		t.Error("an issue built via NewIssue should always be valid")
	}
}

func TestIssue_IsZero(t *testing.T) {
	if !(Issue{}).IsZero() {
		t.Error("zero Issue should report IsZero")
	}
	issue := NewIssue(Error, E_ADAPTER_PARSE, "x").Build()
	if issue.IsZero() {
		t.Error("a built issue should not report IsZero")
	}
}

func TestNewIssue_PanicsOnInvalidInput(t *testing.T) {
	cases := []func(){
		func() { NewIssue(Severity(99), E_ADAPTER_PARSE, "msg") },
		func() { NewIssue(Error, Code{}, "msg") },
		func() { NewIssue(Error, E_ADAPTER_PARSE, "") },
	}
	for i, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("case %d: expected a panic", i)
				}
			}()
			fn()
		}()
	}
}
