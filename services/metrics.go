package services

import (
	"strconv"
	"strings"

	"influencer_match/models"
)

// 解析失败或字段缺失时的文档化缺省值。
// 质量分统一在0-10量纲上，缺省取中位的5.0；互动率以百分点表示。
const (
	DefaultFollowers      = 10000.0
	DefaultEngagementRate = 1.0
	DefaultQualityScore   = 5.0
	DefaultAvgLikes       = 0.0
	DefaultPosts          = 100.0
)

// ParseCompactNumber 解析紧凑格式的数值字符串：
// 千分位逗号被剥离，K/M/B后缀（大小写均可）分别乘以1e3/1e6/1e9，
// 百分号按字面意义保留数值部分（"2.3%" -> 2.3，即百分点而非小数）。
func ParseCompactNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSuffix(s, "%")

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "k"), strings.HasSuffix(s, "K"):
		multiplier = 1e3
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "m"), strings.HasSuffix(s, "M"):
		multiplier = 1e6
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "b"), strings.HasSuffix(s, "B"):
		multiplier = 1e9
		s = s[:len(s)-1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v * multiplier, true
}

// normalizeField 解析单个原始字段，失败时落到缺省值并记录字段名
func normalizeField(raw models.FlexNumber, def float64, field string, defaulted map[string]bool) float64 {
	v, ok := ParseCompactNumber(raw.String())
	if !ok {
		defaulted[field] = true
		return def
	}
	return v
}

// NormalizeProfile 把一条影响者记录的全部原始数值字段归一化。
// 归一化从不失败：解析不了的字段落到缺省值，并通过Defaulted暴露出来。
// 评分公式只允许读取这里的输出，不得自行解析原始字符串。
func NormalizeProfile(p *models.InfluencerProfile) models.NormalizedMetrics {
	defaulted := make(map[string]bool)
	m := models.NormalizedMetrics{
		Followers:         normalizeField(p.Followers, DefaultFollowers, "followers", defaulted),
		AvgLikes:          normalizeField(p.AvgLikes, DefaultAvgLikes, "avg_likes", defaulted),
		EngagementRate:    normalizeField(p.EngRate, DefaultEngagementRate, "engagement_rate", defaulted),
		Posts:             normalizeField(p.Posts, DefaultPosts, "posts", defaulted),
		Credibility:       normalizeField(p.CredibilityScore, DefaultQualityScore, "credibility", defaulted),
		Influence:         normalizeField(p.InfluenceScore, DefaultQualityScore, "influence", defaulted),
		EngagementQuality: normalizeField(p.EngagementQuality, DefaultQualityScore, "engagement_quality", defaulted),
		Longevity:         normalizeField(p.LongevityScore, DefaultQualityScore, "longevity", defaulted),
		Defaulted:         defaulted,
	}

	// 负数没有业务含义，同样按解析失败处理
	if m.Followers <= 0 {
		m.Followers = DefaultFollowers
		defaulted["followers"] = true
	}
	if m.EngagementRate < 0 {
		m.EngagementRate = DefaultEngagementRate
		defaulted["engagement_rate"] = true
	}
	return m
}

// unitScore 把量纲不一致的质量分压到[0,1]：
// 大于10按0-100量纲除以10，大于1按0-10量纲除以5，最后钳制。
// 钳制保证了分段映射在区间边界上的单调性。
func unitScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		v = v / 10
	} else if v > 1 {
		v = v / 5
	}
	if v > 1 {
		v = 1
	}
	return v
}
