package dqa

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietmedtour/backend/internal/model"
)

func newTestService(t *testing.T, hospitals ...model.Hospital) *Service {
	t.Helper()
	hospitalRepo, knowledgeRepo := newTestRepos(t)
	seedHospitals(t, hospitalRepo, hospitals...)
	return NewService(hospitalRepo, knowledgeRepo, time.Hour, false)
}

func TestServiceGenerateDQACountValidation(t *testing.T) {
	s := newTestService(t, model.Hospital{Name: "A"})

	for _, count := range []int{0, -1, 101} {
		_, err := s.GenerateDQA(count)
		assert.ErrorIs(t, err, ErrCountOutOfRange, "count %d", count)
	}

	result, err := s.GenerateDQA(1)
	require.NoError(t, err)
	single, ok := result.(RunResult)
	require.True(t, ok, "count=1 should return a single run result")
	assert.True(t, single.Success)

	result, err = s.GenerateDQA(3)
	require.NoError(t, err)
	batch, ok := result.(*BatchResult)
	require.True(t, ok, "count>1 should return a batch result")
	assert.Equal(t, 3, batch.Total)
}

func TestServiceControlScheduler(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.ControlScheduler("start"))
	assert.True(t, s.Running())

	require.NoError(t, s.ControlScheduler("restart"))
	assert.True(t, s.Running())

	require.NoError(t, s.ControlScheduler("stop"))
	assert.False(t, s.Running())

	err := s.ControlScheduler("pause")
	assert.ErrorIs(t, err, ErrUnknownAction)

	s.Shutdown()
}

func TestServiceInitializeDisabled(t *testing.T) {
	s := newTestService(t)
	s.Initialize()
	assert.False(t, s.Running())
}

func TestServiceHospitalList(t *testing.T) {
	s := newTestService(t,
		model.Hospital{Name: "A", City: "Hà Nội"},
		model.Hospital{Name: "B", City: "Hà Nội"},
		model.Hospital{Name: "C"},
	)

	data, err := s.HospitalList()
	require.NoError(t, err)
	assert.Equal(t, 3, data["total"])

	cities, ok := data["city_distribution"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 2, cities["Hà Nội"])
	assert.Equal(t, 1, cities[UnknownCityBucket])
}
