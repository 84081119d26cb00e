package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencer_match/models"
)

func testProfiles() []models.InfluencerProfile {
	profiles := []models.InfluencerProfile{
		{
			ChannelInfo: "@fitguru",
			Category:    "Fitness & Gym",
			Description: "workout gear reviews and gym training plans",
			Keywords:    "workout, gym, training",
			Country:     "United States",
			Followers:   "500K",
			EngRate:     "3.5%",
		},
		{
			ChannelInfo: "@chefanna",
			Category:    "cooking",
			Description: "easy recipes and kitchen tips for home cooks",
			Keywords:    "recipes, kitchen, chef",
			Country:     "Italy",
			Followers:   "250K",
			EngRate:     "2.1%",
		},
		{
			ChannelInfo: "@traveljoe",
			Category:    "Travel",
			Description: "destinations and adventure vlogs around the world",
			Keywords:    "travel, adventure",
			Country:     "Spain",
			Followers:   "1.1M",
			EngRate:     "1.4%",
		},
	}
	prepareProfiles(profiles, nil)
	return profiles
}

func TestSimilarityBounds(t *testing.T) {
	profiles := testProfiles()
	v := BuildVectorizer(profiles, 0)

	for _, p := range profiles {
		s := v.Similarity("workout gear for fitness fans", p.Username)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestSimilarityNeutralDefaults(t *testing.T) {
	v := BuildVectorizer(testProfiles(), 0)

	// 空文本和未索引的影响者都返回中性的0.5，而不是报错
	assert.Equal(t, NeutralSimilarity, v.Similarity("", "fitguru"))
	assert.Equal(t, NeutralSimilarity, v.Similarity("   ", "fitguru"))
	assert.Equal(t, NeutralSimilarity, v.Similarity("workout gear", "nobody_here"))
}

func TestSimilarityPrefersTopicalOverlap(t *testing.T) {
	v := BuildVectorizer(testProfiles(), 0)

	fit := v.Similarity("Acme Fit fitness workout gear", "fitguru")
	cook := v.Similarity("Acme Fit fitness workout gear", "chefanna")
	assert.Greater(t, fit, cook)
}

func TestVectorizerVocabularyFrozen(t *testing.T) {
	v := BuildVectorizer(testProfiles(), 0)
	size := v.VocabularySize()

	// 查询只做transform，不得扩展词表
	vec := v.TransformQuery("completely unseen zirconium blather")
	assert.Empty(t, vec)
	assert.Equal(t, size, v.VocabularySize())
}

func TestVectorizerMaxFeaturesCap(t *testing.T) {
	v := BuildVectorizer(testProfiles(), 3)
	assert.LessOrEqual(t, v.VocabularySize(), 3)
}

func TestVectorizerDeterministicFit(t *testing.T) {
	a := BuildVectorizer(testProfiles(), 50)
	b := BuildVectorizer(testProfiles(), 50)
	require.Equal(t, a.vocabulary, b.vocabulary)
	require.Equal(t, a.idf, b.idf)
}

func TestVectorizerPlaceholderForEmptyProfile(t *testing.T) {
	profiles := []models.InfluencerProfile{
		{ChannelInfo: "@silent"},
		{ChannelInfo: "@fitguru", Category: "fitness", Description: "workout videos"},
	}
	prepareProfiles(profiles, nil)
	v := BuildVectorizer(profiles, 0)

	// 空记录退回占位文档，不会产生空向量
	row, ok := v.rows["silent"]
	require.True(t, ok)
	assert.NotEmpty(t, v.vectors[row])

	s := v.Similarity("influencer content creator", "silent")
	assert.Greater(t, s, 0.0)
}

func TestVectorizerEmptyCatalog(t *testing.T) {
	v := BuildVectorizer(nil, 100)
	assert.Equal(t, 0, v.VocabularySize())
	assert.Equal(t, NeutralSimilarity, v.Similarity("anything", "anyone"))
}
