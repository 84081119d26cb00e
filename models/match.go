package models

// MatchResult 商家与单个影响者的完整匹配评估结果，每次请求重新计算
type MatchResult struct {
	Username           string  `json:"username"`
	BusinessName       string  `json:"business_name"`
	MatchPercentage    float64 `json:"match_percentage"`    // 0-100
	EstimatedCost      float64 `json:"estimated_cost"`      // 货币单位，有下限
	EstimatedROI       float64 `json:"estimated_roi"`       // 百分比，下限0
	EstimatedReach     int64   `json:"estimated_reach"`     // 预计触达人数
	RelevancyScore     float64 `json:"relevancy_score"`     // 0-100
	LongevityPotential float64 `json:"longevity_potential"` // 0-100
	RecommendationTier string  `json:"recommendation_tier"`
	Recommendation     string  `json:"recommendation"`
	// Defaulted 表示匹配分来自失败兜底的中性值而非真实计算
	Defaulted bool `json:"defaulted,omitempty"`
}

// RecommendationEntry 批量推荐中的一条结果
type RecommendationEntry struct {
	Username        string  `json:"username"`
	MatchPercentage float64 `json:"match_percentage"`
	EstimatedCost   float64 `json:"estimated_cost"`
	EstimatedROI    float64 `json:"estimated_roi"`
	Followers       float64 `json:"followers"`
	Category        string  `json:"category"`
	CompositeScore  float64 `json:"composite_score"`
	Recommendation  string  `json:"recommendation"`
}
