package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftmedhelp/backend/internal/adapters/handoff"
	"github.com/swiftmedhelp/backend/internal/application/services"
	"github.com/swiftmedhelp/backend/internal/domain/entities"
)

func TestOPCardService_Render(t *testing.T) {
	ctx := context.Background()

	draft := &entities.AppointmentDraft{
		PatientName:  "Ramesh Gupta",
		Age:          42,
		Gender:       "Male",
		Phone:        "+91-9812345678",
		Date:         "March 15, 2025",
		DoctorName:   "Dr. Rajesh Kumar",
		Department:   "Cardiology",
		HospitalName: "Apollo Hospital",
		Fee:          1500,
		CreatedAt:    time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC),
	}

	t.Run("empty slot reports not ok without error", func(t *testing.T) {
		svc := services.NewOPCardService(handoff.NewMemoryAdapter())

		card, ok, err := svc.Render(ctx, "session-1")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, card)
	})

	t.Run("renders the parked draft", func(t *testing.T) {
		store := handoff.NewMemoryAdapter()
		require.NoError(t, store.Put(ctx, "session-1", draft))

		svc := services.NewOPCardService(store)
		card, ok, err := svc.Render(ctx, "session-1")
		require.NoError(t, err)
		require.True(t, ok)
		require.NotNil(t, card)

		assert.Equal(t, *draft, card.Draft)
		assert.NotEmpty(t, card.Instructions)
		assert.NotEmpty(t, card.EmergencyContact)
	})

	t.Run("OP number is OP plus eight digits of the clock", func(t *testing.T) {
		store := handoff.NewMemoryAdapter()
		require.NoError(t, store.Put(ctx, "session-1", draft))

		svc := services.NewOPCardService(store).WithClock(func() time.Time {
			// Unix millis 1741599000000; the last eight digits are 99000000.
			return time.UnixMilli(1741599000000)
		})

		card, _, err := svc.Render(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, "OP99000000", card.OPNumber)
	})

	t.Run("code pattern is 8x8 and deterministic per OP number", func(t *testing.T) {
		store := handoff.NewMemoryAdapter()
		require.NoError(t, store.Put(ctx, "session-1", draft))

		clock := func() time.Time { return time.UnixMilli(1741599123456) }
		svc := services.NewOPCardService(store).WithClock(clock)

		first, _, err := svc.Render(ctx, "session-1")
		require.NoError(t, err)
		second, _, err := svc.Render(ctx, "session-1")
		require.NoError(t, err)

		require.Len(t, first.CodePattern, 8)
		for _, row := range first.CodePattern {
			assert.Len(t, row, 8)
		}
		// Same OP number, same pattern on reprint.
		assert.Equal(t, first.CodePattern, second.CodePattern)
	})

	t.Run("rendering does not consume the draft", func(t *testing.T) {
		store := handoff.NewMemoryAdapter()
		require.NoError(t, store.Put(ctx, "session-1", draft))

		svc := services.NewOPCardService(store)
		_, ok, err := svc.Render(ctx, "session-1")
		require.NoError(t, err)
		require.True(t, ok)

		_, ok, err = svc.Render(ctx, "session-1")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
