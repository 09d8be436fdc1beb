package services

import (
	"context"
	"crypto/sha256"
	"strconv"
	"time"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
	"github.com/swiftmedhelp/backend/internal/domain/providers"
)

const opCodePatternSize = 8

var opCardInstructions = []string{
	"Please carry this OP card along with a valid ID proof",
	"Arrive 15 minutes before your scheduled appointment",
	"Bring any relevant medical reports or prescriptions",
	"Contact the hospital if you need to reschedule",
}

const opCardEmergencyContact = "+91-9876543210"

// OPCardService turns the session's handed-off appointment draft into a
// printable OP card.
type OPCardService struct {
	handoff providers.HandoffStore
	now     func() time.Time
}

// NewOPCardService creates a new OP card service
func NewOPCardService(handoff providers.HandoffStore) *OPCardService {
	return &OPCardService{
		handoff: handoff,
		now:     time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *OPCardService) WithClock(now func() time.Time) *OPCardService {
	s.now = now
	return s
}

// Render reads the session's appointment draft and builds the OP card.
// ok is false when no draft is in flight; the caller redirects to the
// entry point in that case. This is an expected state, not an error.
func (s *OPCardService) Render(ctx context.Context, sessionID string) (*entities.OPCard, bool, error) {
	draft, ok, err := s.handoff.Read(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	opNumber := s.opNumber()
	return &entities.OPCard{
		OPNumber:         opNumber,
		Draft:            *draft,
		Instructions:     opCardInstructions,
		EmergencyContact: opCardEmergencyContact,
		CodePattern:      codePattern(opNumber),
	}, true, nil
}

// opNumber derives the display identifier from the render timestamp: "OP"
// plus the last eight digits of the unix-millisecond clock. It is a
// display artifact only, not a persisted unique key.
func (s *OPCardService) opNumber() string {
	ms := strconv.FormatInt(s.now().UnixMilli(), 10)
	return "OP" + ms[len(ms)-8:]
}

// codePattern builds the decorative 8x8 check-in pattern from a hash of
// the OP number. Deterministic per number so reprints of the same card
// look identical.
func codePattern(opNumber string) [][]bool {
	sum := sha256.Sum256([]byte(opNumber))
	pattern := make([][]bool, opCodePatternSize)
	for row := 0; row < opCodePatternSize; row++ {
		pattern[row] = make([]bool, opCodePatternSize)
		for col := 0; col < opCodePatternSize; col++ {
			bit := row*opCodePatternSize + col
			pattern[row][col] = sum[bit/8]&(1<<(bit%8)) != 0
		}
	}
	return pattern
}
