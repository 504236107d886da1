package dqa

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vietmedtour/backend/internal/model"
	"github.com/vietmedtour/backend/internal/repository"
)

func newTestRepos(t *testing.T) (repository.HospitalRepository, repository.KnowledgeRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Hospital{}, &model.Knowledge{}))
	return repository.NewHospitalRepository(db), repository.NewKnowledgeRepository(db)
}

// failingKnowledgeRepo 写库总是失败
type failingKnowledgeRepo struct {
	repository.KnowledgeRepository
}

func (f *failingKnowledgeRepo) Create(k *model.Knowledge) error {
	return errors.New("disk full")
}

func TestSchedulerRunOnce(t *testing.T) {
	hospitals, knowledge := newTestRepos(t)
	seedHospitals(t, hospitals, model.Hospital{Name: "Bệnh viện Test", City: "Hà Nội"})

	g := NewGenerator(NewExtractor(hospitals), newRandSource(1))
	s := NewScheduler(g, knowledge, time.Minute)

	result := s.RunOnce()
	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, "Bệnh viện Test", result.HospitalName)
	assert.NotZero(t, result.KnowledgeID)
	assert.NotEmpty(t, result.Question)

	// 按 ID 读回的行与生成内容逐字段一致
	saved, err := knowledge.Get(result.KnowledgeID)
	require.NoError(t, err)
	assert.Equal(t, result.Question, saved.Question)
	assert.Contains(t, saved.Question, "Bệnh viện Test")
	assert.Contains(t, saved.Answer, "Bệnh viện Test")
	assert.Equal(t, "Tư vấn bệnh viện", saved.Category)
	require.Len(t, saved.Tags, 3)
	assert.Equal(t, "bệnh viện", saved.Tags[0])
	assert.Equal(t, "Hà Nội", saved.Tags[1])
	assert.Contains(t, topicOrder, saved.Tags[2])
	assert.Equal(t, subcategoryLabels[saved.Tags[2]], saved.Subcategory)
	assert.Equal(t, "published", saved.Status)
	assert.Equal(t, model.SourceAPI, saved.Source)
	assert.True(t, strings.HasPrefix(saved.ExternalID, "dqa_auto_"), "external id %q", saved.ExternalID)

	stats := s.Stats()
	assert.Equal(t, 1, stats["total_generated"])
	assert.Equal(t, 1, stats["total_success"])
	assert.Equal(t, 0, stats["total_failed"])
	assert.Equal(t, "100.00%", stats["success_rate"])
}

func TestSchedulerRunOnceNoHospitals(t *testing.T) {
	hospitals, knowledge := newTestRepos(t)
	g := NewGenerator(NewExtractor(hospitals), newRandSource(1))
	s := NewScheduler(g, knowledge, time.Minute)

	result := s.RunOnce()
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)

	stats := s.Stats()
	assert.Equal(t, 1, stats["total_generated"])
	assert.Equal(t, 0, stats["total_success"])
	assert.Equal(t, 1, stats["total_failed"])
	assert.Equal(t, "0.00%", stats["success_rate"])
}

func TestSchedulerRunOncePersistFailure(t *testing.T) {
	hospitals, _ := newTestRepos(t)
	seedHospitals(t, hospitals, model.Hospital{Name: "Bệnh viện Test"})

	g := NewGenerator(NewExtractor(hospitals), newRandSource(1))
	s := NewScheduler(g, &failingKnowledgeRepo{}, time.Minute)

	result := s.RunOnce()
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "disk full")

	stats := s.Stats()
	assert.Equal(t, 1, stats["total_failed"])
}

func TestSchedulerRunBatch(t *testing.T) {
	hospitals, knowledge := newTestRepos(t)
	seedHospitals(t, hospitals,
		model.Hospital{Name: "A"},
		model.Hospital{Name: "B"},
		model.Hospital{Name: "C"},
	)

	g := NewGenerator(NewExtractor(hospitals), newRandSource(3))
	s := NewScheduler(g, knowledge, time.Minute)

	result, err := s.RunBatch(5)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 5, result.Success)
	assert.Equal(t, 0, result.Failed)
	require.Len(t, result.Created, 5)

	total, err := knowledge.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	for _, item := range result.Created {
		saved, err := knowledge.Get(item.ID)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(saved.ExternalID, "dqa_batch_"), "external id %q", saved.ExternalID)
	}
}

func TestSchedulerRunBatchEmptyPool(t *testing.T) {
	hospitals, knowledge := newTestRepos(t)
	g := NewGenerator(NewExtractor(hospitals), newRandSource(1))
	s := NewScheduler(g, knowledge, time.Minute)

	_, err := s.RunBatch(3)
	assert.ErrorIs(t, err, ErrNoHospitals)
}

func TestSchedulerStartStop(t *testing.T) {
	hospitals, knowledge := newTestRepos(t)
	g := NewGenerator(NewExtractor(hospitals), newRandSource(1))
	s := NewScheduler(g, knowledge, time.Hour)

	assert.False(t, s.Running())
	s.Start()
	assert.True(t, s.Running())
	// 重复 Start 为空操作
	s.Start()
	assert.True(t, s.Running())

	s.Stop()
	assert.False(t, s.Running())
	// 重复 Stop 同样安全
	s.Stop()
	assert.False(t, s.Running())
}

func TestSchedulerResetStats(t *testing.T) {
	hospitals, knowledge := newTestRepos(t)
	seedHospitals(t, hospitals, model.Hospital{Name: "A"})

	g := NewGenerator(NewExtractor(hospitals), newRandSource(1))
	s := NewScheduler(g, knowledge, time.Minute)

	s.RunOnce()
	s.ResetStats()

	stats := s.Stats()
	assert.Equal(t, 0, stats["total_generated"])
	assert.Equal(t, "N/A", stats["success_rate"])
	assert.NotContains(t, stats, "last_run")
}

func TestNextQuarterHour(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 7, 30, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 15, 0, 0, time.UTC), nextQuarterHour(base))

	onBoundary := time.Date(2025, 3, 1, 10, 15, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC), nextQuarterHour(onBoundary))

	endOfHour := time.Date(2025, 3, 1, 10, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC), nextQuarterHour(endOfHour))
}
