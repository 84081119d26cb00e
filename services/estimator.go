package services

import (
	"fmt"
	"math"

	"influencer_match/models"
)

// 粉丝量档位边界与财务公式常量
const (
	bracketMicroMax  = 10_000.0
	bracketSmallMax  = 100_000.0
	bracketMediumMax = 1_000_000.0

	minimumCost       = 50.0
	averageOrderValue = 50.0

	reachBonusCap   = 15.0
	reachPercentCap = 50.0
)

// baseCost 按粉丝档位的分段线性基础报价。
// 每一档从上一档的上限值接续，报价在档位边界处连续。
func baseCost(followers float64) float64 {
	switch {
	case followers < bracketMicroMax:
		return followers * 0.01
	case followers < bracketSmallMax:
		return 100 + (followers-bracketMicroMax)*0.005
	case followers < bracketMediumMax:
		return 550 + (followers-bracketSmallMax)*0.002
	default:
		return 2350 + (followers-bracketMediumMax)*0.001
	}
}

// EstimateCost 合作成本估算：基础报价乘以互动率、影响力分、可信度分
// 三个(metric/baseline)^exponent形式的收益递减乘数，不低于最低报价。
func EstimateCost(m models.NormalizedMetrics) float64 {
	engagement := m.EngagementRate
	if engagement < 0 {
		engagement = 0
	}
	engMult := math.Pow(engagement/2.0, 0.6)
	infMult := math.Pow(math.Max(unitScore(m.Influence)*10, 0.1)/5.0, 0.3)
	credMult := math.Pow(math.Max(unitScore(m.Credibility)*10, 0.1)/5.0, 0.3)

	cost := baseCost(m.Followers) * engMult * infMult * credMult
	if cost < minimumCost {
		return minimumCost
	}
	return cost
}

// baseReachPercent 档位基础触达率，账号越大基础触达率越低
func baseReachPercent(followers float64) float64 {
	switch {
	case followers < bracketMicroMax:
		return 35
	case followers < bracketSmallMax:
		return 25
	case followers < bracketMediumMax:
		return 15
	default:
		return 8
	}
}

// EstimateReach 预计触达人数：基础触达率加互动加成（上限15个百分点），
// 总触达率不超过50%，再乘以互动与可信度驱动的病毒传播系数，截断为整数。
func EstimateReach(m models.NormalizedMetrics) int64 {
	bonus := math.Min(reachBonusCap, m.EngagementRate*2)
	percent := math.Min(reachPercentCap, baseReachPercent(m.Followers)+bonus)
	viral := 1 + (m.EngagementRate/100)*0.5 + unitScore(m.Credibility)*0.2
	return int64(m.Followers * percent / 100 * viral)
}

// EstimateROI 投资回报率估算。
// 转化率随匹配分线性上升并乘以质量系数；互动人群按百分点口径换算；
// 收入按固定客单价计，最后乘以随匹配分增长的置信系数，下限为0。
func EstimateROI(m models.NormalizedMetrics, matchPercent, cost float64) float64 {
	quality := 0.5 + 0.25*unitScore(m.Credibility) + 0.25*unitScore(m.EngagementQuality)
	conversionRate := (0.0005 + matchPercent*0.000045) * quality

	// 互动率是百分点口径，换算成人数时除以100
	engagedAudience := m.Followers * m.EngagementRate / 100
	revenue := engagedAudience * conversionRate * averageOrderValue

	if cost <= 0 {
		cost = minimumCost
	}
	roi := (revenue - cost) / cost * 100
	roi *= 0.7 + matchPercent/100*0.3
	if roi < 0 {
		return 0
	}
	return roi
}

// RelevancyScore 相关度：类目匹配分占80%，归一化互动质量占20%，0-100
func RelevancyScore(categoryScore float64, m models.NormalizedMetrics) float64 {
	return 0.8*categoryScore*100 + 0.2*unitScore(m.EngagementQuality)*100
}

// LongevityScore 长期合作潜力：归一化持久度占70%，可信度占30%，0-100
func LongevityScore(m models.NormalizedMetrics) float64 {
	return (0.7*unitScore(m.Longevity) + 0.3*unitScore(m.Credibility)) * 100
}

// recommendationTier 按(匹配分, ROI)阈值排列的推荐档位
type recommendationTier struct {
	minMatch float64
	minROI   float64
	label    string
	template string
}

// 六个档位从高到低匹配，每条消息都包含影响者、商家和ROI数字
var recommendationTiers = []recommendationTier{
	{85, 150, "Exceptional Match",
		"@%s is an exceptional partner for %s: strong audience alignment with a projected ROI of %.1f%%."},
	{75, 100, "Strong Match",
		"@%s is a strong fit for %s, with a projected ROI of %.1f%%."},
	{60, 50, "Good Match",
		"@%s is a good fit for %s; expect a projected ROI around %.1f%%."},
	{45, 20, "Moderate Match",
		"@%s could work for %s, though the projected ROI of %.1f%% is modest."},
	{30, 0, "Weak Match",
		"@%s is a weak match for %s; the projected ROI of %.1f%% leaves little headroom."},
	{0, 0, "Not Recommended",
		"@%s is not recommended for %s at a projected ROI of %.1f%%."},
}

// Recommendation 根据匹配分和ROI选择推荐档位并生成说明文本
func Recommendation(matchPercent, roi float64, username, businessName string) (string, string) {
	if businessName == "" {
		businessName = "your business"
	}
	for _, tier := range recommendationTiers {
		if matchPercent >= tier.minMatch && roi >= tier.minROI {
			return tier.label, fmt.Sprintf(tier.template, username, businessName, roi)
		}
	}
	last := recommendationTiers[len(recommendationTiers)-1]
	return last.label, fmt.Sprintf(last.template, username, businessName, roi)
}
