package dqa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietmedtour/backend/internal/model"
)

func newTestEnhancer(t *testing.T, hospitals ...model.Hospital) *Enhancer {
	t.Helper()
	repo := newTestRepo(t)
	seedHospitals(t, repo, hospitals...)
	extractor := NewExtractor(repo)
	return NewEnhancer(extractor, repo, newRandSource(1))
}

func TestAnalyzeChainsMissingCities(t *testing.T) {
	e := newTestEnhancer(t,
		model.Hospital{Name: "Sun Clinic - Hà Nội", City: "Hà Nội"},
		model.Hospital{Name: "Sun Clinic - TP.HCM", City: "TP.HCM"},
	)

	result, err := e.AnalyzeChains()
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalChains)

	chain := result.Analyzed[0]
	assert.Equal(t, "Sun Clinic", chain.ChainName)
	assert.Equal(t, 2, chain.BranchCount)
	// 缺失城市按主要城市表顺序
	assert.Equal(t, []string{"Đà Nẵng", "Cần Thơ", "Hải Phòng"}, chain.MissingCities)
	assert.NotEmpty(t, chain.Suggestions)

	for _, s := range chain.Suggestions {
		assert.True(t, strings.HasPrefix(s.SuggestedName, "Sun Clinic - "), "name %q", s.SuggestedName)
		assert.True(t, strings.HasSuffix(s.Address, ", Việt Nam"), "address %q", s.Address)
		assert.Equal(t, "private", s.Type)
		assert.Equal(t, "B", s.Level)
		// 缺多个城市时优先级不是 high
		assert.Equal(t, "medium", s.Priority)
	}
}

func TestAnalyzeChainsHighPriority(t *testing.T) {
	// 只缺一个主要城市时建议为 high
	e := newTestEnhancer(t,
		model.Hospital{Name: "Gangwhoo - Hà Nội", City: "Hà Nội"},
		model.Hospital{Name: "Gangwhoo - TP.HCM", City: "TP.HCM"},
		model.Hospital{Name: "Gangwhoo - Đà Nẵng", City: "Đà Nẵng"},
		model.Hospital{Name: "Gangwhoo - Cần Thơ", City: "Cần Thơ"},
	)

	result, err := e.AnalyzeChains()
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalChains)

	chain := result.Analyzed[0]
	assert.Equal(t, []string{"Hải Phòng"}, chain.MissingCities)
	require.NotEmpty(t, chain.Suggestions)
	for _, s := range chain.Suggestions {
		assert.Equal(t, "high", s.Priority)
		assert.Equal(t, "Hải Phòng", s.City)
		assert.True(t, strings.HasPrefix(s.Phone, "0225"), "phone %q", s.Phone)
	}
}

func TestAnalyzeChainsReadOnly(t *testing.T) {
	repo := newTestRepo(t)
	seedHospitals(t, repo,
		model.Hospital{Name: "Sun Clinic - Hà Nội", City: "Hà Nội"},
		model.Hospital{Name: "Sun Clinic - TP.HCM", City: "TP.HCM"},
	)
	e := NewEnhancer(NewExtractor(repo), repo, newRandSource(1))

	_, err := e.AnalyzeChains()
	require.NoError(t, err)

	total, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestApplySuggestions(t *testing.T) {
	repo := newTestRepo(t)
	seedHospitals(t, repo,
		model.Hospital{Name: "Gangwhoo - Hà Nội", City: "Hà Nội"},
		model.Hospital{Name: "Gangwhoo - TP.HCM", City: "TP.HCM"},
		model.Hospital{Name: "Gangwhoo - Đà Nẵng", City: "Đà Nẵng"},
		model.Hospital{Name: "Gangwhoo - Cần Thơ", City: "Cần Thơ"},
	)
	e := NewEnhancer(NewExtractor(repo), repo, newRandSource(1))

	result, err := e.ApplySuggestions(1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.CreatedCount)
	assert.Equal(t, 0, result.ErrorCount)
	require.Len(t, result.Created, 1)

	created, err := repo.Get(result.Created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Hải Phòng", created.City)
	assert.Equal(t, "B", created.Level)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, model.SourceAPI, created.Source)
	assert.Equal(t, 4.0, created.Rating)
}

func TestApplySuggestionsNoHighPriority(t *testing.T) {
	e := newTestEnhancer(t,
		model.Hospital{Name: "Sun Clinic - Hà Nội", City: "Hà Nội"},
		model.Hospital{Name: "Sun Clinic - TP.HCM", City: "TP.HCM"},
	)

	result, err := e.ApplySuggestions(10)
	require.NoError(t, err)
	assert.Equal(t, 0, result.CreatedCount)
	assert.Empty(t, result.Created)
}
