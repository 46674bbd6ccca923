package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

// TestHelperConstructors tests that each helper tags its error with the
// right type and keeps the message.
func TestHelperConstructors(t *testing.T) {
	cause := fmt.Errorf("disk full")

	tests := []struct {
		name     string
		err      *Error
		wantType Type
		wantMsg  string
	}{
		{name: "validation", err: Validation("bad input"), wantType: TypeValidation, wantMsg: "bad input"},
		{name: "validationf", err: Validationf("row %d bad", 4), wantType: TypeValidation, wantMsg: "row 4 bad"},
		{name: "parsing", err: Parsing("opening workbook", cause), wantType: TypeParsing, wantMsg: "opening workbook"},
		{name: "export", err: Export("Aurora", cause), wantType: TypeExport, wantMsg: `exporting artifacts for "Aurora"`},
		{name: "config", err: Config("loading config", cause), wantType: TypeConfig, wantMsg: "loading config"},
		{name: "profile", err: Profile("duplicate name"), wantType: TypeProfile, wantMsg: "duplicate name"},
		{name: "internal", err: Internal("impossible state", cause), wantType: TypeInternal, wantMsg: "impossible state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsType(tt.err, tt.wantType) {
				t.Errorf("IsType() = false, want type %s", tt.wantType)
			}
			if !strings.Contains(tt.err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want mention of %q", tt.err.Error(), tt.wantMsg)
			}
			if !strings.Contains(tt.err.Error(), string(tt.wantType)) {
				t.Errorf("Error() = %q, want the %s tag", tt.err.Error(), tt.wantType)
			}
		})
	}
}

// TestUnwrap tests that wrapped causes stay reachable through the
// standard errors helpers.
func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Export("Aurora", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if got := stderrors.Unwrap(err); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
}

// TestIsTypeMismatch tests type checks against foreign and differently
// typed errors.
func TestIsTypeMismatch(t *testing.T) {
	if IsType(fmt.Errorf("plain"), TypeValidation) {
		t.Error("IsType(plain error) = true, want false")
	}
	if IsType(Validation("x"), TypeExport) {
		t.Error("IsType(validation, TypeExport) = true, want false")
	}
	if IsType(nil, TypeValidation) {
		t.Error("IsType(nil) = true, want false")
	}
}

// TestWithContext tests the context map accumulating entries.
func TestWithContext(t *testing.T) {
	err := Validation("bad row").
		WithContext("row", 4).
		WithContext("column", "Future_Capex")

	if got := err.Context["row"]; got != 4 {
		t.Errorf("Context[row] = %v, want 4", got)
	}
	if got := err.Context["column"]; got != "Future_Capex" {
		t.Errorf("Context[column] = %v, want Future_Capex", got)
	}
}
