package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencer_match/models"
)

func testEngine() *Engine {
	return NewEngine(testProfiles(), 0, 5)
}

func TestEngineMatchFitnessBeatsCooking(t *testing.T) {
	engine := testEngine()
	business := models.BusinessProfile{
		BusinessName:     "Acme Fit",
		BusinessCategory: "fitness",
		Description:      "workout gear",
	}

	fit, err := engine.Match(business, "fitguru")
	require.NoError(t, err)
	cook, err := engine.Match(business, "chefanna")
	require.NoError(t, err)

	// 类目包含关系至少拿到0.85
	assert.GreaterOrEqual(t, CategoryMatchScore(business.BusinessCategory, "Fitness & Gym"), 0.85)
	assert.Greater(t, fit.MatchPercentage, cook.MatchPercentage)

	assert.GreaterOrEqual(t, fit.MatchPercentage, 10.0)
	assert.LessOrEqual(t, fit.MatchPercentage, 100.0)
	assert.GreaterOrEqual(t, fit.EstimatedCost, minimumCost)
	assert.GreaterOrEqual(t, fit.EstimatedROI, 0.0)
	assert.Greater(t, fit.EstimatedReach, int64(0))
	assert.NotEmpty(t, fit.RecommendationTier)
	assert.Contains(t, fit.Recommendation, "@fitguru")
	assert.Contains(t, fit.Recommendation, "Acme Fit")
	assert.False(t, fit.Defaulted)
}

func TestEngineMatchUnknownInfluencer(t *testing.T) {
	engine := testEngine()
	_, err := engine.Match(models.BusinessProfile{BusinessName: "Acme"}, "ghost_user")
	assert.ErrorIs(t, err, ErrInfluencerNotFound)
}

func TestEngineMatchHandlePrefixAndCase(t *testing.T) {
	engine := testEngine()
	withAt, err := engine.Match(models.BusinessProfile{BusinessName: "Acme"}, "@FitGuru")
	require.NoError(t, err)
	plain, err := engine.Match(models.BusinessProfile{BusinessName: "Acme"}, "fitguru")
	require.NoError(t, err)
	assert.Equal(t, plain.MatchPercentage, withAt.MatchPercentage)
}

func TestEngineEmptyBusinessStillScores(t *testing.T) {
	engine := testEngine()

	// 商家文本为空时相似度固定为中性的0.5，不报错
	assert.Equal(t, NeutralSimilarity, engine.vectorizer.Similarity("", "fitguru"))

	result, err := engine.Match(models.BusinessProfile{}, "fitguru")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.MatchPercentage, 10.0)
	assert.LessOrEqual(t, result.MatchPercentage, 100.0)
}

func TestEngineRecommendCountAndOrder(t *testing.T) {
	engine := testEngine()
	business := models.BusinessProfile{
		BusinessName:     "Acme Fit",
		BusinessCategory: "fitness",
		Description:      "workout gear",
	}

	entries := engine.Recommend(business, 3)
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].CompositeScore, entries[i].CompositeScore)
	}

	// 默认条数
	defaulted := engine.Recommend(business, 0)
	assert.Len(t, defaulted, 3) // 目录只有3条

	// 请求条数超过目录规模时返回全部
	all := engine.Recommend(business, 50)
	assert.Len(t, all, 3)
}

func TestEngineRecommendDeterministic(t *testing.T) {
	engine := testEngine()
	business := models.BusinessProfile{
		BusinessName:     "Acme Fit",
		BusinessCategory: "fitness",
		Description:      "workout gear",
	}

	first := engine.Recommend(business, 3)
	for i := 0; i < 5; i++ {
		again := engine.Recommend(business, 3)
		assert.Equal(t, first, again)
	}
}

func TestEngineRecommendStableTieBreak(t *testing.T) {
	// 两条完全相同的记录综合分相等，稳定排序保持目录顺序
	profiles := []models.InfluencerProfile{
		{ChannelInfo: "@twin_a", Category: "fitness", Description: "workout videos", Followers: "100K", EngRate: "2%"},
		{ChannelInfo: "@twin_b", Category: "fitness", Description: "workout videos", Followers: "100K", EngRate: "2%"},
	}
	prepareProfiles(profiles, nil)
	engine := NewEngine(profiles, 0, 5)

	entries := engine.Recommend(models.BusinessProfile{BusinessCategory: "fitness"}, 2)
	require.Len(t, entries, 2)
	assert.Equal(t, "twin_a", entries[0].Username)
	assert.Equal(t, "twin_b", entries[1].Username)
	assert.Equal(t, entries[0].CompositeScore, entries[1].CompositeScore)
}

func TestCompositeScoreComponents(t *testing.T) {
	// ROI被压到100上限后权重0.6，匹配分权重0.3，成本效率权重0.1
	score := CompositeScore(100, 50, 10_000, 1_000_000)
	assert.InDelta(t, 0.6*100+0.3*100+0.1*100, score, 1e-9)

	assert.Equal(t, 0.0, CostEfficiency(1000, 0))
	assert.InDelta(t, 1.0, CostEfficiency(10_000, 100), 1e-9)
}

func TestEngineHolderSwap(t *testing.T) {
	engine := testEngine()
	holder := NewEngineHolder(engine)
	require.Same(t, engine, holder.Load())

	rebuilt := NewEngine(testProfiles(), 0, 5)
	holder.Swap(rebuilt)
	assert.Same(t, rebuilt, holder.Load())
}
