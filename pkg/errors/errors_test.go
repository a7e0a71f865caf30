package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "edge %d: vertex %d out of range", 2, 9)

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}
	if want := "INVALID_INPUT: edge 2: vertex 9 out of range"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("no such file or directory")
	err := Wrap(ErrCodeFileNotFound, cause, "open input %s", "graph.in")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if want := "FILE_NOT_FOUND: open input graph.in: no such file or directory"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsAndGetCode(t *testing.T) {
	sessionMissing := New(ErrCodeSessionNotFound, "session abc")

	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"coded", New(ErrCodeInvalidConfig, "width"), ErrCodeInvalidConfig},
		{"outer code wins", Wrap(ErrCodeFileNotFound, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeFileNotFound},
		{"through fmt.Errorf", fmt.Errorf("replay: %w", sessionMissing), ErrCodeSessionNotFound},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%v, %s) = false", tt.err, tt.code)
			}
			if Is(tt.err, ErrCodeInternal) {
				t.Errorf("Is(%v, INTERNAL_ERROR) = true", tt.err)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeInvalidFormat, "invalid format: gif"), "invalid format: gif"},
		{"plain", errors.New("plain error"), "plain error"},
		{"with cause", Wrap(ErrCodeFileNotFound, errors.New("no such file"), "open graph.in"), "open graph.in: no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
