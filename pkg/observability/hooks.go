// Package observability provides hooks for board events and store operations.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Hosts register hooks at
// startup to receive notifications about box lifecycle changes and store
// traffic; libraries emit events through the registry.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Board hooks are invoked synchronously after a mutation has been validated
// and committed. A rejected placement never reaches a hook.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBoardHooks(&myBoardHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Board().OnBoxResized(observability.BoxEvent{BoardID: "main", BoxID: "left"})
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/gridboard/pkg/core/grid"
)

// =============================================================================
// Board Hooks
// =============================================================================

// BoxEvent describes a committed change to one box.
type BoxEvent struct {
	BoardID   string    // Board owning the box
	BoxID     string    // Box that changed
	Container string    // Container holding the box after the change
	OnBoard   bool      // Whether Container is the board itself
	Rect      grid.Rect // Dimensions after the change
	Previous  grid.Rect // Dimensions before the change (resize, move, transfer)
	From      string    // Previous container (transfer only)
	Partner   string    // Linked box adjusted by the same resize, if any
}

// BoardHooks receives notifications about box lifecycle changes.
type BoardHooks interface {
	OnBoxCreated(ev BoxEvent)
	OnBoxResized(ev BoxEvent)
	OnBoxMoved(ev BoxEvent)
	OnBoxTransferred(ev BoxEvent)
	OnBoxDestroyed(ev BoxEvent)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from board store operations.
type StoreHooks interface {
	// OnLoad records a board load; hit is false when the board did not exist.
	OnLoad(ctx context.Context, backend string, hit bool, duration time.Duration)

	// OnSave records a board write of size boxes.
	OnSave(ctx context.Context, backend string, size int, duration time.Duration, err error)

	// OnDelete records a board removal.
	OnDelete(ctx context.Context, backend string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopBoardHooks is a no-op implementation of BoardHooks.
type NoopBoardHooks struct{}

func (NoopBoardHooks) OnBoxCreated(BoxEvent)     {}
func (NoopBoardHooks) OnBoxResized(BoxEvent)     {}
func (NoopBoardHooks) OnBoxMoved(BoxEvent)       {}
func (NoopBoardHooks) OnBoxTransferred(BoxEvent) {}
func (NoopBoardHooks) OnBoxDestroyed(BoxEvent)   {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnLoad(context.Context, string, bool, time.Duration)       {}
func (NoopStoreHooks) OnSave(context.Context, string, int, time.Duration, error) {}
func (NoopStoreHooks) OnDelete(context.Context, string, error)                   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	boardHooks BoardHooks = NoopBoardHooks{}
	storeHooks StoreHooks = NoopStoreHooks{}
	hooksMu    sync.RWMutex
)

// SetBoardHooks registers custom board hooks.
// This should be called once at application startup before any board operations.
func SetBoardHooks(h BoardHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		boardHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Board returns the registered board hooks.
func Board() BoardHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return boardHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	boardHooks = NoopBoardHooks{}
	storeHooks = NoopStoreHooks{}
}

// =============================================================================
// Fan-out
// =============================================================================

// MultiBoardHooks forwards every event to each hook in order.
type MultiBoardHooks []BoardHooks

func (m MultiBoardHooks) OnBoxCreated(ev BoxEvent) {
	for _, h := range m {
		h.OnBoxCreated(ev)
	}
}

func (m MultiBoardHooks) OnBoxResized(ev BoxEvent) {
	for _, h := range m {
		h.OnBoxResized(ev)
	}
}

func (m MultiBoardHooks) OnBoxMoved(ev BoxEvent) {
	for _, h := range m {
		h.OnBoxMoved(ev)
	}
}

func (m MultiBoardHooks) OnBoxTransferred(ev BoxEvent) {
	for _, h := range m {
		h.OnBoxTransferred(ev)
	}
}

func (m MultiBoardHooks) OnBoxDestroyed(ev BoxEvent) {
	for _, h := range m {
		h.OnBoxDestroyed(ev)
	}
}
