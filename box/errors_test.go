package box

import (
	"errors"
	"fmt"
	"testing"
)

// TestEmptyValueError verifies formatting of EmptyValueError.
func TestEmptyValueError(t *testing.T) {
	tests := []struct {
		name     string
		err      *EmptyValueError
		expected string
	}{
		{"Named type", &EmptyValueError{Type: "float64"}, "box: unwrap of empty Box[float64]"},
		{"Unnamed type", &EmptyValueError{}, "box: unwrap of empty Box"},
		{"Interface type", emptyValueError[any](), "box: unwrap of empty Box[interface {}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("EmptyValueError.Error() = %q; want %q", result, tt.expected)
			}
		})
	}
}

// TestEmptyValueErrorWrapped verifies that errors.Is sees through wrapping.
func TestEmptyValueErrorWrapped(t *testing.T) {
	_, err := Empty[[]byte]().Unwrap()
	wrapped := fmt.Errorf("reading payload: %w", err)
	if !errors.Is(wrapped, ErrEmptyValue) {
		t.Errorf("expected wrapped error to match ErrEmptyValue")
	}
	var eve *EmptyValueError
	if !errors.As(wrapped, &eve) || eve.Type != "[]uint8" {
		t.Errorf("expected *EmptyValueError for []uint8, got %v", err)
	}
	if errors.Is(errors.New("other"), ErrEmptyValue) {
		t.Errorf("unrelated error must not match ErrEmptyValue")
	}
}
