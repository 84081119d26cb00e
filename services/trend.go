package services

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"influencer_match/models"
)

// 合成序列的基准值与月增长率，只在没有真实历史数据时使用
var syntheticBaselines = map[string]struct{ base, growth float64 }{
	"engagement":    {base: 2.0, growth: 0.04},
	"quality_score": {base: 6.0, growth: 0.01},
	"followers":     {base: 100_000, growth: 0.03},
	"likes":         {base: 5_000, growth: 0.035},
}

// GenerateSampleSeries 为指定指标生成带增长、季节性和随机扰动的合成月度序列。
// 随机源由调用方注入，传入固定种子的rand即可得到可复现的序列。
func GenerateSampleSeries(metric string, months int, rng *rand.Rand) ([]models.TrendPoint, error) {
	metric = strings.ToLower(strings.TrimSpace(metric))
	if _, ok := syntheticBaselines[metric]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMetric, metric)
	}
	if months < 2 {
		months = 12
	}

	series := make([]models.TrendPoint, 0, months)
	for i := 0; i < months; i++ {
		point := models.TrendPoint{
			Month:  monthNames[i%12],
			Period: i + 1,
		}
		point.Engagement = syntheticValue("engagement", i, rng)
		point.QualityScore = syntheticValue("quality_score", i, rng)
		point.Followers = syntheticValue("followers", i, rng)
		point.Likes = syntheticValue("likes", i, rng)
		series = append(series, point)
	}
	return series, nil
}

func syntheticValue(metric string, month int, rng *rand.Rand) float64 {
	b := syntheticBaselines[metric]
	growth := math.Pow(1+b.growth, float64(month))
	seasonal := 1 + 0.1*math.Sin(2*math.Pi*float64(month)/12)
	noise := 1 + (rng.Float64()-0.5)*0.08
	return b.base * growth * seasonal * noise
}
