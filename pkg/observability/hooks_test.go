package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Debug hooks
	d := NoopDebugHooks{}
	d.OnFrameEmitted(ctx, "main.go:42", 3, time.Millisecond)
	d.OnRenderIssue(ctx, "adj", "<malformed graph: vertex 0>")
	d.OnUsageError(ctx, "main.go:7", "no arguments")

	// Session hooks
	s := NoopSessionHooks{}
	s.OnSessionStarted(ctx, "id")
	s.OnFrameRecorded(ctx, "id", 1)
	s.OnSessionExported(ctx, "id", "session.json", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Debug().(NoopDebugHooks); !ok {
		t.Error("Debug() should return NoopDebugHooks by default")
	}
	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Session() should return NoopSessionHooks by default")
	}

	// Set custom hooks
	customDebug := &testDebugHooks{}
	SetDebugHooks(customDebug)
	if Debug() != customDebug {
		t.Error("SetDebugHooks should set custom hooks")
	}

	customSession := &testSessionHooks{}
	SetSessionHooks(customSession)
	if Session() != customSession {
		t.Error("SetSessionHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Debug().(NoopDebugHooks); !ok {
		t.Error("Reset() should restore NoopDebugHooks")
	}
	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Reset() should restore NoopSessionHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testDebugHooks{}
	SetDebugHooks(custom)

	// Setting nil should be ignored
	SetDebugHooks(nil)

	if Debug() != custom {
		t.Error("SetDebugHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testDebugHooks struct{ NoopDebugHooks }
type testSessionHooks struct{ NoopSessionHooks }
