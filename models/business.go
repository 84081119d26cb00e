package models

// BusinessProfile 商家画像，随请求提供，从不持久化
type BusinessProfile struct {
	BusinessName     string  `json:"businessName"`
	BusinessCategory string  `json:"businessCategory"`
	Description      string  `json:"description"`
	Budget           float64 `json:"budget,omitempty"`
}

// MatchRequest 单个影响者匹配请求
type MatchRequest struct {
	Business           BusinessProfile `json:"business"`
	InfluencerUsername string          `json:"influencer_username"`
}

// RecommendationRequest 批量推荐请求，Count为0时使用服务端默认值
type RecommendationRequest struct {
	Business BusinessProfile `json:"business"`
	Count    int             `json:"count,omitempty"`
}
