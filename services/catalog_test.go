package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencer_match/config"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func catalogConfig(path, enrichedPath string) *config.Config {
	cfg := &config.Config{}
	cfg.Catalog.Source = "file"
	cfg.Catalog.Path = path
	cfg.Catalog.EnrichedPath = enrichedPath
	return cfg
}

const catalogJSON = `[
	{"channel_info": "@fitguru", "followers": "500K", "60_day_eng_rate": "3.5%", "category": "Fitness & Gym", "rank": 1},
	{"channel_info": "chefanna ", "followers": 250000, "60_day_eng_rate": "2.1%", "category": "cooking"}
]`

func TestLoadCatalogFromFile(t *testing.T) {
	path := writeTempFile(t, "catalog.json", catalogJSON)
	profiles, err := LoadCatalog(catalogConfig(path, filepath.Join(t.TempDir(), "missing.json")))
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	// @前缀和空白都被剥离
	assert.Equal(t, "fitguru", profiles[0].Username)
	assert.Equal(t, "chefanna", profiles[1].Username)

	// 字符串和数字两种格式都归一化成功
	assert.InDelta(t, 500_000, profiles[0].Metrics.Followers, 1e-6)
	assert.InDelta(t, 250_000, profiles[1].Metrics.Followers, 1e-6)
	assert.InDelta(t, 3.5, profiles[0].Metrics.EngagementRate, 1e-9)
	assert.False(t, profiles[0].Metrics.IsDefaulted("followers"))
}

func TestLoadCatalogAppliesEnrichment(t *testing.T) {
	path := writeTempFile(t, "catalog.json", catalogJSON)
	enriched := writeTempFile(t, "enhanced.json", `{"@fitguru": "fitness", "missing_user": "gaming"}`)

	profiles, err := LoadCatalog(catalogConfig(path, enriched))
	require.NoError(t, err)

	// 映射中存在的记录类目被覆盖一次，不存在的保留原始类目
	assert.Equal(t, "fitness", profiles[0].Category)
	assert.Equal(t, "cooking", profiles[1].Category)
}

func TestLoadCatalogMissingFileFails(t *testing.T) {
	cfg := catalogConfig(filepath.Join(t.TempDir(), "nope.json"), "")
	_, err := LoadCatalog(cfg)
	assert.Error(t, err)
}

func TestLoadCatalogMalformedFileFails(t *testing.T) {
	path := writeTempFile(t, "broken.json", `{"not": "an array"`)
	_, err := LoadCatalog(catalogConfig(path, ""))
	assert.Error(t, err)
}

func TestLoadCatalogEmptyFails(t *testing.T) {
	path := writeTempFile(t, "empty.json", `[]`)
	_, err := LoadCatalog(catalogConfig(path, ""))
	assert.Error(t, err)
}

func TestLoadCatalogBrokenEnrichmentKeepsOriginal(t *testing.T) {
	path := writeTempFile(t, "catalog.json", catalogJSON)
	enriched := writeTempFile(t, "enhanced.json", `not json at all`)

	profiles, err := LoadCatalog(catalogConfig(path, enriched))
	require.NoError(t, err)
	assert.Equal(t, "Fitness & Gym", profiles[0].Category)
}
