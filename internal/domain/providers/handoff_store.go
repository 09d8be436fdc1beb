package providers

import (
	"context"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
)

// HandoffStore is the single-slot, session-scoped store that carries one
// appointment draft from the booking step to the OP card. Put overwrites
// unconditionally; the next booking is the only lifecycle event, there is
// no Clear.
type HandoffStore interface {
	// Put stores the draft in the session's slot, replacing any previous draft
	Put(ctx context.Context, sessionID string, draft *entities.AppointmentDraft) error

	// Read returns the session's current draft. ok is false when the slot
	// is empty, which is an expected state, not an error.
	Read(ctx context.Context, sessionID string) (draft *entities.AppointmentDraft, ok bool, err error)
}
