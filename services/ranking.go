package services

import "math"

// 综合排序分的权重：ROI占大头，其次匹配分，最后是成本效率
const (
	rankWeightROI            = 0.6
	rankWeightMatch          = 0.3
	rankWeightCostEfficiency = 0.1
)

// CostEfficiency 每单位成本换来的粉丝量，压到0-100；成本非正时记0
func CostEfficiency(followers, cost float64) float64 {
	if cost <= 0 {
		return 0
	}
	return math.Min(100, (followers/cost)/100)
}

// CompositeScore 批量推荐使用的综合排序分
func CompositeScore(matchPercent, cost, roi, followers float64) float64 {
	return rankWeightROI*math.Min(100, roi/5) +
		rankWeightMatch*matchPercent +
		rankWeightCostEfficiency*CostEfficiency(followers, cost)
}
