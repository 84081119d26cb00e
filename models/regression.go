package models

// TrendPoint 一个周期的指标采样，month为周期标签（如 "January 2025"）
type TrendPoint struct {
	Month        string  `json:"month"`
	Period       int     `json:"period"`
	Engagement   float64 `json:"engagement"`
	QualityScore float64 `json:"quality_score"`
	Followers    float64 `json:"followers"`
	Likes        float64 `json:"likes"`
}

// PredictionPoint 回归结果中的一个预测点，历史点和外推点统一表示
type PredictionPoint struct {
	Month     string  `json:"month"`
	Period    int     `json:"period"`
	Predicted float64 `json:"predicted"`
	IsFuture  bool    `json:"is_future"`
}

// RegressionResult 最小二乘拟合结果及历史+外推预测序列
type RegressionResult struct {
	Metric      string            `json:"metric"`
	Slope       float64           `json:"slope"`
	Intercept   float64           `json:"intercept"`
	RSquared    float64           `json:"r_squared"`
	Predictions []PredictionPoint `json:"predictions"`
}

// RegressionRequest 回归分析请求
type RegressionRequest struct {
	Metric string       `json:"metric"`
	Series []TrendPoint `json:"series"`
}

// TrendSampleRequest 合成趋势序列请求，Seed非0时结果可复现
type TrendSampleRequest struct {
	Metric string `json:"metric"`
	Months int    `json:"months,omitempty"`
	Seed   int64  `json:"seed,omitempty"`
}
