package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencer_match/models"
)

func linearSeries() []models.TrendPoint {
	// engagement = 2x + 1
	return []models.TrendPoint{
		{Month: "October 2025", Period: 1, Engagement: 1},
		{Month: "November 2025", Period: 2, Engagement: 3},
		{Month: "December 2025", Period: 3, Engagement: 5},
	}
}

func TestFitTrendRecoversPerfectLine(t *testing.T) {
	result, err := FitTrend("engagement", linearSeries())
	require.NoError(t, err)

	assert.InDelta(t, 2.0, result.Slope, 1e-9)
	assert.InDelta(t, 1.0, result.Intercept, 1e-9)
	assert.InDelta(t, 1.0, result.RSquared, 1e-9)
}

func TestFitTrendProjectsNinePeriods(t *testing.T) {
	result, err := FitTrend("engagement", linearSeries())
	require.NoError(t, err)
	require.Len(t, result.Predictions, 3+forecastHorizon)

	future := 0
	for _, p := range result.Predictions {
		if p.IsFuture {
			future++
		}
	}
	assert.Equal(t, forecastHorizon, future)

	// 历史点标签原样保留
	assert.Equal(t, "October 2025", result.Predictions[0].Month)
	assert.False(t, result.Predictions[0].IsFuture)

	// 十二月绕回一月并进位年份
	first := result.Predictions[3]
	assert.True(t, first.IsFuture)
	assert.Equal(t, "January 2026", first.Month)
	assert.Equal(t, 4, first.Period)

	// 外推值延续拟合直线
	assert.InDelta(t, 7.0, first.Predicted, 1e-9)
}

func TestFitTrendMonthWithoutYear(t *testing.T) {
	series := []models.TrendPoint{
		{Month: "Nov", Engagement: 1},
		{Month: "Dec", Engagement: 2},
	}
	result, err := FitTrend("engagement", series)
	require.NoError(t, err)

	first := result.Predictions[2]
	assert.Equal(t, "Jan", first.Month)
	// 未提供period时按序号补齐
	assert.Equal(t, 3, first.Period)
}

func TestFitTrendUnparseableMonthDegrades(t *testing.T) {
	series := []models.TrendPoint{
		{Month: "Q1", Engagement: 1},
		{Month: "Q2", Engagement: 2},
	}
	result, err := FitTrend("engagement", series)
	require.NoError(t, err)
	assert.Equal(t, "Period 3", result.Predictions[2].Month)
}

func TestFitTrendConstantSeries(t *testing.T) {
	series := []models.TrendPoint{
		{Month: "Jan", Followers: 100},
		{Month: "Feb", Followers: 100},
		{Month: "Mar", Followers: 100},
	}
	result, err := FitTrend("followers", series)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, result.Slope, 1e-9)
	assert.InDelta(t, 1.0, result.RSquared, 1e-9)
}

func TestFitTrendRequestShapeErrors(t *testing.T) {
	_, err := FitTrend("charisma", linearSeries())
	assert.ErrorIs(t, err, ErrUnsupportedMetric)

	_, err = FitTrend("engagement", linearSeries()[:1])
	assert.ErrorIs(t, err, ErrSeriesTooShort)

	_, err = FitTrend("engagement", nil)
	assert.ErrorIs(t, err, ErrSeriesTooShort)
}

func TestGenerateSampleSeriesReproducible(t *testing.T) {
	a, err := GenerateSampleSeries("followers", 12, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := GenerateSampleSeries("followers", 12, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Len(t, a, 12)
	assert.Equal(t, a, b)

	// 不同种子应产生不同扰动
	c, err := GenerateSampleSeries("followers", 12, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerateSampleSeriesUnsupportedMetric(t *testing.T) {
	_, err := GenerateSampleSeries("charisma", 12, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrUnsupportedMetric)
}

func TestGenerateSampleSeriesFeedsRegression(t *testing.T) {
	series, err := GenerateSampleSeries("engagement", 12, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	result, err := FitTrend("engagement", series)
	require.NoError(t, err)
	assert.Len(t, result.Predictions, 12+forecastHorizon)
}
