package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftmedhelp/backend/internal/adapters/catalog"
	apperrors "github.com/swiftmedhelp/backend/pkg/errors"
)

func TestFixtureConsistency(t *testing.T) {
	fx := catalog.Default()

	t.Run("doctors reference existing hospitals", func(t *testing.T) {
		hospitals := make(map[string]bool)
		for _, h := range fx.Hospitals {
			hospitals[h.ID] = true
		}
		for _, d := range fx.Doctors {
			assert.True(t, hospitals[d.HospitalID], "doctor %s references unknown hospital %s", d.ID, d.HospitalID)
		}
	})

	t.Run("hospitals reference existing departments, services and segregation types", func(t *testing.T) {
		departments := make(map[string]bool)
		for _, d := range fx.Departments {
			departments[d.ID] = true
		}
		services := make(map[string]bool)
		for _, s := range fx.Services {
			services[s.ID] = true
		}
		segregations := make(map[string]bool)
		for _, s := range fx.SegregationTypes {
			segregations[s.ID] = true
		}

		for _, h := range fx.Hospitals {
			for _, id := range h.DepartmentIDs {
				assert.True(t, departments[id], "hospital %s references unknown department %s", h.ID, id)
			}
			for _, id := range h.ServiceIDs {
				assert.True(t, services[id], "hospital %s references unknown service %s", h.ID, id)
			}
			for _, id := range h.SegregationIDs {
				assert.True(t, segregations[id], "hospital %s references unknown segregation type %s", h.ID, id)
			}
		}
	})

	t.Run("doctor specializations are catalog specializations", func(t *testing.T) {
		specializations := make(map[string]bool)
		for _, s := range fx.Specializations {
			specializations[s] = true
		}
		for _, d := range fx.Doctors {
			assert.True(t, specializations[d.Specialization], "doctor %s has unknown specialization %s", d.ID, d.Specialization)
		}
	})

	t.Run("seed reviews reference existing doctors", func(t *testing.T) {
		doctors := make(map[string]bool)
		for _, d := range fx.Doctors {
			doctors[d.ID] = true
		}
		for _, r := range fx.Reviews {
			assert.True(t, doctors[r.DoctorID], "review %s references unknown doctor %s", r.ID, r.DoctorID)
		}
	})
}

func TestMemoryAdapters(t *testing.T) {
	ctx := context.Background()
	fx := catalog.Default()

	t.Run("doctor lookup", func(t *testing.T) {
		adapter := catalog.NewDoctorAdapter(fx)

		doctor, err := adapter.GetByID(ctx, "dr-rajesh-kumar")
		require.NoError(t, err)
		assert.Equal(t, "Dr. Rajesh Kumar", doctor.Name)

		_, err = adapter.GetByID(ctx, "dr-nobody")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("hospital lookup", func(t *testing.T) {
		adapter := catalog.NewHospitalAdapter(fx)

		hospital, err := adapter.GetByID(ctx, "apollo")
		require.NoError(t, err)
		assert.Equal(t, "Apollo Hospital", hospital.Name)

		_, err = adapter.GetByID(ctx, "nowhere")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("department lookup", func(t *testing.T) {
		adapter := catalog.NewDepartmentAdapter(fx)

		dept, err := adapter.GetByID(ctx, "cardiology")
		require.NoError(t, err)
		assert.Equal(t, "Cardiology", dept.Name)

		_, err = adapter.GetByID(ctx, "alchemy")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("consultation type lookup", func(t *testing.T) {
		adapter := catalog.NewConsultationTypeAdapter(fx)

		ct, err := adapter.GetByID(ctx, "video")
		require.NoError(t, err)
		assert.InDelta(t, 0.7, ct.PriceMultiplier, 0.0001)

		list, err := adapter.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 5)
	})

	t.Run("reference lists", func(t *testing.T) {
		adapter := catalog.NewReferenceAdapter(fx)

		cities, err := adapter.Cities(ctx)
		require.NoError(t, err)
		assert.Len(t, cities, 10)

		specializations, err := adapter.Specializations(ctx)
		require.NoError(t, err)
		assert.Len(t, specializations, 12)

		services, err := adapter.Services(ctx)
		require.NoError(t, err)
		assert.Len(t, services, 6)

		segregations, err := adapter.SegregationTypes(ctx)
		require.NoError(t, err)
		assert.Len(t, segregations, 4)
	})
}
