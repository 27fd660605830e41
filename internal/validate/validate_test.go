// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package validate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidator_ExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty is optional", "", false},
		{"existing dir", dir, false},
		{"missing dir", filepath.Join(dir, "missing"), true},
		{"regular file", file, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.ExistingDirectory("workingDir", tt.path)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_Durations(t *testing.T) {
	tests := []struct {
		name        string
		d           time.Duration
		positiveErr bool
		nonNegErr   bool
	}{
		{"positive", time.Second, false, false},
		{"zero", 0, true, false},
		{"negative", -time.Millisecond, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.PositiveDuration("d", tt.d)
			if got := !v.IsValid(); got != tt.positiveErr {
				t.Errorf("PositiveDuration(%s) error = %v, want %v", tt.d, got, tt.positiveErr)
			}

			v = New()
			v.NonNegativeDuration("d", tt.d)
			if got := !v.IsValid(); got != tt.nonNegErr {
				t.Errorf("NonNegativeDuration(%s) error = %v, want %v", tt.d, got, tt.nonNegErr)
			}
		})
	}
}

func TestValidator_OneOf(t *testing.T) {
	v := New()
	v.OneOf("logLevel", "info", LogLevels)
	if !v.IsValid() {
		t.Fatalf("unexpected error: %v", v.Err())
	}

	v.OneOf("logLevel", "loud", LogLevels)
	if v.IsValid() {
		t.Fatal("expected error for unknown level")
	}
}

func TestValidationError_Aggregates(t *testing.T) {
	v := New()
	if v.Err() != nil {
		t.Fatal("expected nil error from empty validator")
	}

	v.AddError("a", "first", 1)
	v.AddError("b", "second", 2)

	err := v.Err()
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(verr.Errors()))
	}
	want := "validation failed for a: first; validation failed for b: second"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseLogLevel(t *testing.T) {
	for _, name := range LogLevels {
		if _, err := ParseLogLevel(name); err != nil {
			t.Errorf("ParseLogLevel(%q) unexpected error: %v", name, err)
		}
	}
	if _, err := ParseLogLevel("verbose"); !errors.Is(err, ErrInvalidLogLevel) {
		t.Errorf("expected ErrInvalidLogLevel, got %v", err)
	}
}

func TestValidatorErrDetachedFromLaterErrors(t *testing.T) {
	v := New()
	v.AddError("a", "first", 1)
	err := v.Err()

	v.AddError("b", "second", 2)

	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Errors()) != 1 {
		t.Errorf("earlier Err() changed after AddError: %d errors", len(verr.Errors()))
	}
}
