package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/scenebridge/scenebridge/internal/platform/errors"
)

func TestErrorMatchesByCode(t *testing.T) {
	err := errors.New(errors.CodeTimeout, "call timed out")
	if !stderrors.Is(err, errors.New(errors.CodeTimeout, "other message")) {
		t.Fatal("expected errors with the same code to match")
	}
	if stderrors.Is(err, errors.New(errors.CodeConnection, "call timed out")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := errors.WrapTarget(errors.CodeConnection, "host unreachable", "http://127.0.0.1:30010", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
	if err.Target != "http://127.0.0.1:30010" {
		t.Fatalf("expected target to be preserved, got %q", err.Target)
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("tool call: %w", errors.New(errors.CodeUnknownCommand, "no such command"))
	if code := errors.CodeOf(wrapped); code != errors.CodeUnknownCommand {
		t.Fatalf("expected UNKNOWN_COMMAND, got %s", code)
	}
	if code := errors.CodeOf(fmt.Errorf("plain")); code != errors.CodeUnknown {
		t.Fatalf("expected UNKNOWN for plain error, got %s", code)
	}
}
