package models

import (
	"encoding/json"
	"fmt"
)

// FlexNumber 兼容字符串和数字两种JSON标量的原始值，例如 "1.2M"、"2.3%"、4900。
// 解析出的内容始终以字符串形式保存，数值化统一交给指标归一化层处理。
type FlexNumber string

func (f *FlexNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexNumber(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexNumber(n.String())
		return nil
	}
	return fmt.Errorf("unsupported scalar value: %s", string(b))
}

func (f FlexNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f FlexNumber) String() string {
	return string(f)
}

// InfluencerProfile 目录中的一条影响者记录。原始字段保持导出时的混乱格式，
// 加载后不再修改；类目允许在启动时被增强映射覆盖一次。
type InfluencerProfile struct {
	Rank              FlexNumber `json:"rank,omitempty"`
	ChannelInfo       string     `json:"channel_info"`
	InfluenceScore    FlexNumber `json:"influence_score,omitempty"`
	Posts             FlexNumber `json:"posts,omitempty"`
	Followers         FlexNumber `json:"followers,omitempty"`
	AvgLikes          FlexNumber `json:"avg_likes,omitempty"`
	EngRate           FlexNumber `json:"60_day_eng_rate,omitempty"`
	Country           string     `json:"country,omitempty"`
	Category          string     `json:"category,omitempty"`
	Description       string     `json:"description,omitempty"`
	Keywords          string     `json:"keywords,omitempty"`
	ContentTopics     string     `json:"content_topics,omitempty"`
	CredibilityScore  FlexNumber `json:"credibility_score,omitempty"`
	EngagementQuality FlexNumber `json:"engagement_quality,omitempty"`
	LongevityScore    FlexNumber `json:"longevity_score,omitempty"`

	// Username 由channel_info派生（去掉@前缀），作为目录内的唯一标识
	Username string `json:"-"`
	// Metrics 归一化后的数值指标，评分公式只读取这里
	Metrics NormalizedMetrics `json:"-"`
}

// NormalizedMetrics 经过指标归一化层处理的数值。所有评分公式的唯一数值来源。
// EngagementRate 以百分点表示（2.3 即 2.3%），质量分在 0-10 量纲上。
type NormalizedMetrics struct {
	Followers         float64
	AvgLikes          float64
	EngagementRate    float64
	Posts             float64
	Credibility       float64
	Influence         float64
	EngagementQuality float64
	Longevity         float64

	// Defaulted 记录哪些字段解析失败、落到了文档化缺省值
	Defaulted map[string]bool
}

// IsDefaulted 判断某个字段是否使用了缺省值
func (m NormalizedMetrics) IsDefaulted(field string) bool {
	return m.Defaulted[field]
}

// InfluencerSummary 目录列表接口返回的精简视图
type InfluencerSummary struct {
	Username  string  `json:"username"`
	Category  string  `json:"category"`
	Country   string  `json:"country,omitempty"`
	Followers float64 `json:"followers"`
	Rank      string  `json:"rank,omitempty"`
}
