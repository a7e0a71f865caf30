// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about emitted diagnostic frames, render conditions and
// recorded sessions.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDebugHooks(&myDebugHooks{})
//	    observability.SetSessionHooks(&mySessionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Debug().OnFrameEmitted(ctx, "main.go:42", 3, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Debug Hooks
// =============================================================================

// DebugHooks receives events from the diagnostic entry points.
type DebugHooks interface {
	// OnFrameEmitted records one frame written to a sink.
	OnFrameEmitted(ctx context.Context, location string, blocks int, duration time.Duration)

	// OnRenderIssue records a block whose body was replaced by a marker
	// such as <malformed graph: ...> or <panic: ...>.
	OnRenderIssue(ctx context.Context, label, marker string)

	// OnUsageError records a call that broke the entry point's contract.
	OnUsageError(ctx context.Context, location, reason string)
}

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from session recording.
type SessionHooks interface {
	// OnSessionStarted records a new session.
	OnSessionStarted(ctx context.Context, id string)

	// OnFrameRecorded records a frame appended to a session.
	OnFrameRecorded(ctx context.Context, id string, frames int)

	// OnSessionExported records a session written to or read from a file.
	OnSessionExported(ctx context.Context, id, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDebugHooks is a no-op implementation of DebugHooks.
type NoopDebugHooks struct{}

func (NoopDebugHooks) OnFrameEmitted(context.Context, string, int, time.Duration) {}
func (NoopDebugHooks) OnRenderIssue(context.Context, string, string)              {}
func (NoopDebugHooks) OnUsageError(context.Context, string, string)               {}

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnSessionStarted(context.Context, string)                 {}
func (NoopSessionHooks) OnFrameRecorded(context.Context, string, int)             {}
func (NoopSessionHooks) OnSessionExported(context.Context, string, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	debugHooks   DebugHooks   = NoopDebugHooks{}
	sessionHooks SessionHooks = NoopSessionHooks{}
	hooksMu      sync.RWMutex
)

// SetDebugHooks registers custom debug hooks.
// This should be called once at application startup.
func SetDebugHooks(h DebugHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		debugHooks = h
	}
}

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// Debug returns the registered debug hooks.
func Debug() DebugHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return debugHooks
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	debugHooks = NoopDebugHooks{}
	sessionHooks = NoopSessionHooks{}
}
