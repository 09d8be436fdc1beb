package handoff

import (
	"context"
	"sync"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
	"github.com/swiftmedhelp/backend/internal/domain/providers"
)

// MemoryAdapter implements the HandoffStore interface with an in-process
// map. Used in tests and when Redis is unavailable.
type MemoryAdapter struct {
	mu    sync.RWMutex
	slots map[string]entities.AppointmentDraft
}

// NewMemoryAdapter creates a new in-memory handoff adapter
func NewMemoryAdapter() providers.HandoffStore {
	return &MemoryAdapter{
		slots: make(map[string]entities.AppointmentDraft),
	}
}

// Put stores the draft in the session's slot, replacing any previous draft
func (a *MemoryAdapter) Put(ctx context.Context, sessionID string, draft *entities.AppointmentDraft) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	// Stored by value so the slot cannot alias the caller's draft.
	a.slots[sessionID] = *draft
	return nil
}

// Read returns the session's current draft, or ok=false for an empty slot
func (a *MemoryAdapter) Read(ctx context.Context, sessionID string) (*entities.AppointmentDraft, bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	draft, ok := a.slots[sessionID]
	if !ok {
		return nil, false, nil
	}
	return &draft, true, nil
}
