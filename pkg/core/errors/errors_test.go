package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestWrap_PreservesCodeAndDetails(t *testing.T) {
	inner := New("unable to press key").
		WithCode(CodeInputRejected).
		WithDetail("key", "space")

	outer := Wrap(inner, "line 3")

	if outer.Code() != CodeInputRejected {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeInputRejected)
	}
	if v, ok := outer.Detail("key"); !ok || v != "space" {
		t.Errorf("Detail(key) = %v, %v", v, ok)
	}
	if outer.Error() != "line 3: unable to press key" {
		t.Errorf("Error() = %q", outer.Error())
	}
	if !stderrors.Is(outer, inner) {
		t.Error("expected wrapped error to match inner with errors.Is")
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWithCode_SetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeBackendUnavailable, SeverityCritical},
		{CodeScriptSyntax, SeverityHigh},
		{CodeInputRejected, SeverityHigh},
		{CodeHistoryError, SeverityLow},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestWithCode_KeepsExplicitSeverity(t *testing.T) {
	err := New("x").WithSeverity(SeverityLow).WithCode(CodeBackendUnavailable)
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want low", err.Severity())
	}
}

func TestHasCodeAndCodeOf(t *testing.T) {
	base := New("denied").WithCode(CodeInputRejected)
	chained := fmt.Errorf("run failed: %w", base)

	if !HasCode(chained, CodeInputRejected) {
		t.Error("HasCode should find code through fmt.Errorf wrapping")
	}
	if HasCode(chained, CodeScriptSyntax) {
		t.Error("HasCode reported an absent code")
	}
	if CodeOf(chained) != CodeInputRejected {
		t.Errorf("CodeOf() = %v", CodeOf(chained))
	}
	if CodeOf(stderrors.New("plain")) != CodeUnknown {
		t.Error("CodeOf(plain) should be UNKNOWN")
	}
}

func TestDescribe(t *testing.T) {
	err := New("unable to click left button").
		WithCode(CodeInputRejected).
		WithOperation("mouse.double").
		WithDetail("step", 2).
		WithDetail("attempt", 1)

	got := err.Describe()
	want := "[INPUT_REJECTED] unable to click left button (op=mouse.double) attempt=1 step=2"
	if got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestCodeCategory(t *testing.T) {
	if CodeScriptSyntax.Category() != "script" {
		t.Errorf("Category() = %s", CodeScriptSyntax.Category())
	}
	if !strings.EqualFold(CodeInputRejected.Category(), "input") {
		t.Errorf("Category() = %s", CodeInputRejected.Category())
	}
}
