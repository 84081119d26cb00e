package services

import (
	"errors"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"influencer_match/config"
	"influencer_match/logger"
	"influencer_match/models"
	"influencer_match/utils"
)

// ErrInfluencerNotFound 单个匹配请求指定的影响者不在目录中
var ErrInfluencerNotFound = errors.New("influencer not found in catalog")

// Engine 匹配引擎：目录、归一化指标和冻结的TF-IDF向量空间的不可变集合。
// 启动时构建一次，请求路径只读，因此并发请求无需加锁。
// 重建必须构建新实例并通过EngineHolder整体替换。
type Engine struct {
	profiles   []models.InfluencerProfile
	byUsername map[string]int
	vectorizer *Vectorizer
	topNLimit  int
	builtAt    time.Time
}

// NewEngine 由已预处理的目录构建引擎（向量化在这里完成）
func NewEngine(profiles []models.InfluencerProfile, maxFeatures, defaultTopN int) *Engine {
	if defaultTopN <= 0 {
		defaultTopN = 5
	}
	byUsername := make(map[string]int, len(profiles))
	for i := range profiles {
		byUsername[strings.ToLower(profiles[i].Username)] = i
	}
	e := &Engine{
		profiles:   profiles,
		byUsername: byUsername,
		vectorizer: BuildVectorizer(profiles, maxFeatures),
		topNLimit:  defaultTopN,
		builtAt:    time.Now(),
	}
	logger.Info("匹配引擎构建完成", "profiles", len(profiles), "vocabulary", e.vectorizer.VocabularySize())
	return e
}

// BuildEngine 加载目录并构建引擎，用于启动和定时重建
func BuildEngine(cfg *config.Config) (*Engine, error) {
	profiles, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	return NewEngine(profiles, cfg.Matching.MaxFeatures, cfg.Matching.DefaultTopN), nil
}

// Profile 按用户名查找影响者，@前缀和大小写均被忽略
func (e *Engine) Profile(username string) (*models.InfluencerProfile, bool) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(username), "@"))
	idx, ok := e.byUsername[key]
	if !ok {
		return nil, false
	}
	return &e.profiles[idx], true
}

// Profiles 目录的只读视图
func (e *Engine) Profiles() []models.InfluencerProfile {
	return e.profiles
}

// Size 目录条数
func (e *Engine) Size() int {
	return len(e.profiles)
}

// VocabularySize 冻结词表的大小
func (e *Engine) VocabularySize() int {
	return e.vectorizer.VocabularySize()
}

// BuiltAt 引擎构建时间
func (e *Engine) BuiltAt() time.Time {
	return e.builtAt
}

// businessText 商家画像参与相似度计算的拼接文本
func businessText(b models.BusinessProfile) string {
	return strings.TrimSpace(b.BusinessName + " " + b.BusinessCategory + " " + b.Description)
}

// matchPercentage 计算匹配分。相似度和类目计算内部的任何意外失败
// 都兜底为中性的50分并打上标记：排序特性里错一点分数好过整个请求失败。
func (e *Engine) matchPercentage(b models.BusinessProfile, p *models.InfluencerProfile) (pct float64, defaulted bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("匹配分计算失败，使用中性兜底值", "username", p.Username, "panic", r)
			pct = NeutralMatchPercentage
			defaulted = true
		}
	}()

	similarity := e.vectorizer.Similarity(businessText(b), p.Username)
	categoryScore := CategoryMatchScore(b.BusinessCategory, p.Category)
	metricsScore := MetricsScore(p.Metrics)
	return MatchPercentage(similarity, categoryScore, metricsScore), false
}

// Match 计算商家与指定影响者的完整匹配评估。
// 未知用户名是请求形态错误，按fail-loud处理。
func (e *Engine) Match(b models.BusinessProfile, username string) (*models.MatchResult, error) {
	p, ok := e.Profile(username)
	if !ok {
		return nil, ErrInfluencerNotFound
	}
	result := e.evaluate(b, p)
	return &result, nil
}

// evaluate 对单条目录记录运行评分和财务估算
func (e *Engine) evaluate(b models.BusinessProfile, p *models.InfluencerProfile) models.MatchResult {
	pct, defaulted := e.matchPercentage(b, p)
	cost := EstimateCost(p.Metrics)
	roi := EstimateROI(p.Metrics, pct, cost)
	categoryScore := CategoryMatchScore(b.BusinessCategory, p.Category)
	tier, message := Recommendation(pct, roi, p.Username, b.BusinessName)

	return models.MatchResult{
		Username:           p.Username,
		BusinessName:       b.BusinessName,
		MatchPercentage:    pct,
		EstimatedCost:      cost,
		EstimatedROI:       roi,
		EstimatedReach:     EstimateReach(p.Metrics),
		RelevancyScore:     RelevancyScore(categoryScore, p.Metrics),
		LongevityPotential: LongevityScore(p.Metrics),
		RecommendationTier: tier,
		Recommendation:     message,
		Defaulted:          defaulted,
	}
}

// Recommend 对整个目录评估并返回综合排序分最高的count条。
// 稳定排序保证同分记录保持目录顺序，重复调用结果一致。
func (e *Engine) Recommend(b models.BusinessProfile, count int) []models.RecommendationEntry {
	if count <= 0 {
		count = e.topNLimit
	}

	entries := make([]models.RecommendationEntry, 0, len(e.profiles))
	for i := range e.profiles {
		p := &e.profiles[i]
		result := e.evaluate(b, p)
		entries = append(entries, models.RecommendationEntry{
			Username:        p.Username,
			MatchPercentage: result.MatchPercentage,
			EstimatedCost:   result.EstimatedCost,
			EstimatedROI:    result.EstimatedROI,
			Followers:       p.Metrics.Followers,
			Category:        p.Category,
			CompositeScore: CompositeScore(result.MatchPercentage, result.EstimatedCost,
				result.EstimatedROI, p.Metrics.Followers),
			Recommendation: result.Recommendation,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CompositeScore > entries[j].CompositeScore
	})
	return entries[:utils.Min(count, len(entries))]
}

// EngineHolder 引擎的原子持有者。重建后的新引擎通过Swap整体替换，
// 读取方永远不会观察到词表和向量矩阵不一致的中间状态。
type EngineHolder struct {
	ptr atomic.Pointer[Engine]
}

// NewEngineHolder 创建持有者并放入初始引擎
func NewEngineHolder(e *Engine) *EngineHolder {
	h := &EngineHolder{}
	h.ptr.Store(e)
	return h
}

// Load 取当前引擎
func (h *EngineHolder) Load() *Engine {
	return h.ptr.Load()
}

// Swap 原子替换为新引擎
func (h *EngineHolder) Swap(e *Engine) {
	h.ptr.Store(e)
}
