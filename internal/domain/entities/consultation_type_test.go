package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swiftmedhelp/backend/internal/domain/entities"
)

func TestConsultationType_AdjustedFee(t *testing.T) {
	t.Run("base multiplier keeps the fee unchanged", func(t *testing.T) {
		ct := entities.ConsultationType{ID: "in-person", PriceMultiplier: 1.0}
		assert.Equal(t, 1500, ct.AdjustedFee(1500))
	})

	t.Run("rounds to the nearest whole amount", func(t *testing.T) {
		video := entities.ConsultationType{ID: "video", PriceMultiplier: 0.7}
		// 1500 * 0.7 = 1050 exactly
		assert.Equal(t, 1050, video.AdjustedFee(1500))
		// 1100 * 0.7 = 770 exactly, 900 * 0.7 = 630
		assert.Equal(t, 770, video.AdjustedFee(1100))

		phone := entities.ConsultationType{ID: "phone", PriceMultiplier: 0.5}
		// 1233 * 0.5 = 616.5 rounds up
		assert.Equal(t, 617, phone.AdjustedFee(1233))
	})

	t.Run("fractional surcharge rounds exactly", func(t *testing.T) {
		ct := entities.ConsultationType{ID: "priority", PriceMultiplier: 1.25}
		assert.Equal(t, 1500, ct.AdjustedFee(1200))
	})

	t.Run("surcharge multipliers raise the fee", func(t *testing.T) {
		homeVisit := entities.ConsultationType{ID: "home-visit", PriceMultiplier: 1.5}
		assert.Equal(t, 1500, homeVisit.AdjustedFee(1000))

		emergency := entities.ConsultationType{ID: "emergency", PriceMultiplier: 2.0}
		assert.Equal(t, 2400, emergency.AdjustedFee(1200))
	})
}
