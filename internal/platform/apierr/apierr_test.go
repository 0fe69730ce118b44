package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMessagePrecedence(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"wrapped cause", New(http.StatusNotFound, "lesson_not_found", errors.New("lesson not found")), "lesson not found"},
		{"code only", &Error{Status: http.StatusConflict, Code: "email_taken"}, "email_taken"},
		{"status only", &Error{Status: http.StatusBadRequest}, "api error (400)"},
		{"empty", &Error{}, "api error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("no rows")
	wrapped := fmt.Errorf("load lesson: %w", New(http.StatusNotFound, "lesson_not_found", cause))

	var apiErr *Error
	if !errors.As(wrapped, &apiErr) {
		t.Fatalf("errors.As failed on %v", wrapped)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", apiErr.Status)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("errors.Is should reach the original cause")
	}
}
