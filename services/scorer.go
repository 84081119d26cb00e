package services

import (
	"math"
	"strings"

	"influencer_match/models"
)

// 综合匹配分的权重与曲线参数。幂曲线拉开高分段、压缩低分噪声；
// 任何调整都必须保持匹配分对三个输入分量的单调性。
const (
	weightSimilarity = 0.4
	weightCategory   = 0.4
	weightMetrics    = 0.2

	matchCurveExponent = 0.65
	matchFloor         = 10.0
	matchCeiling       = 100.0

	// NeutralMatchPercentage 评分内部失败时的兜底匹配分
	NeutralMatchPercentage = 50.0

	// emptyCategoryScore 词集为空时的类目分下限
	emptyCategoryScore = 0.3
)

// CategoryMatchScore 商家类目与影响者类目的匹配分：
// 完全一致（忽略大小写）为1.0，一方包含另一方为0.85，
// 其余情况取同义词扩展后词集的Jaccard重叠；任一词集为空时取0.3。
func CategoryMatchScore(businessCategory, influencerCategory string) float64 {
	a := strings.ToLower(strings.TrimSpace(businessCategory))
	b := strings.ToLower(strings.TrimSpace(influencerCategory))

	if a != "" && a == b {
		return 1.0
	}
	if a != "" && b != "" && (strings.Contains(a, b) || strings.Contains(b, a)) {
		return 0.85
	}

	setA := ExpandCategoryTerms(a)
	setB := ExpandCategoryTerms(b)
	if len(setA) == 0 || len(setB) == 0 {
		return emptyCategoryScore
	}

	intersection := 0
	for term := range setA {
		if _, ok := setB[term]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return emptyCategoryScore
	}
	return float64(intersection) / float64(union)
}

// MetricsScore 影响者质量指标的加权混合，互动质量占一半
func MetricsScore(m models.NormalizedMetrics) float64 {
	return 0.5*unitScore(m.EngagementQuality) +
		0.25*unitScore(m.Credibility) +
		0.25*unitScore(m.Influence)
}

// MatchPercentage 三个分量的加权线性组合经幂曲线重标定后的匹配百分比，
// 钳制在[10,100]
func MatchPercentage(similarity, categoryScore, metricsScore float64) float64 {
	blended := weightSimilarity*similarity +
		weightCategory*categoryScore +
		weightMetrics*metricsScore
	if blended < 0 {
		blended = 0
	}

	pct := math.Pow(blended, matchCurveExponent) * 100
	if pct < matchFloor {
		return matchFloor
	}
	if pct > matchCeiling {
		return matchCeiling
	}
	return pct
}
