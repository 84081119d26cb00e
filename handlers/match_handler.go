package handlers

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"influencer_match/config"
	_ "influencer_match/docs" // 导入 swagger 文档
	"influencer_match/models"
	"influencer_match/services"
	"influencer_match/utils"
)

// MatchHandler godoc
// @Summary 计算商家与指定影响者的匹配评估
// @Description 返回匹配百分比、预计成本、ROI、触达、相关度、持久度和推荐档位
// @Tags 匹配
// @Accept json
// @Produce json
// @Param request body models.MatchRequest true "商家画像和目标影响者用户名"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 404 {object} models.APIResponse "影响者不存在"
// @Router /api/match [post]
func MatchHandler(w http.ResponseWriter, r *http.Request, holder *services.EngineHolder) {
	var req models.MatchRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if !utils.ValidateUsername(w, req.InfluencerUsername) {
		return
	}

	result, err := holder.Load().Match(req.Business, req.InfluencerUsername)
	if err != nil {
		if errors.Is(err, services.ErrInfluencerNotFound) {
			utils.WriteErrorResponse(w, models.CodeInfluencerNotFound, map[string]interface{}{
				"influencer_username": req.InfluencerUsername,
			})
			return
		}
		utils.WriteCustomErrorResponse(w, models.CodeMatchGenError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, result)
}

// RecommendationsHandler godoc
// @Summary 为商家批量推荐影响者
// @Description 对整个目录评估并按综合排序分返回前N条，count缺省为5
// @Tags 推荐
// @Accept json
// @Produce json
// @Param request body models.RecommendationRequest true "商家画像和返回条数"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /api/recommendations [post]
func RecommendationsHandler(w http.ResponseWriter, r *http.Request, holder *services.EngineHolder) {
	var req models.RecommendationRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}

	entries := holder.Load().Recommend(req.Business, req.Count)
	if len(entries) == 0 {
		utils.WriteErrorResponse(w, models.CodeEmptyRecommendation, map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"business":        req.Business.BusinessName,
		"count":           len(entries),
		"recommendations": entries,
	})
}

// RegressionHandler godoc
// @Summary 对月度指标序列做线性回归并外推
// @Description 最小二乘拟合斜率/截距/R²，并外推9个周期；指标名和序列长度校验失败返回客户端错误
// @Tags 趋势
// @Accept json
// @Produce json
// @Param request body models.RegressionRequest true "指标名和采样序列"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /api/regression [post]
func RegressionHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RegressionRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}

	result, err := services.FitTrend(req.Metric, req.Series)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedMetric):
			utils.WriteCustomErrorResponse(w, models.CodeUnsupportedMetric, err.Error(), map[string]interface{}{
				"supported": services.SupportedMetrics(),
			})
		case errors.Is(err, services.ErrSeriesTooShort):
			utils.WriteErrorResponse(w, models.CodeSeriesTooShort, map[string]interface{}{
				"points": len(req.Series),
			})
		default:
			utils.WriteCustomErrorResponse(w, models.CodeForecastError, err.Error(), map[string]interface{}{})
		}
		return
	}

	utils.WriteSuccessResponse(w, result)
}

// TrendSampleHandler godoc
// @Summary 生成合成趋势序列
// @Description 没有真实历史数据时生成带增长和季节性的合成月度序列，seed非0时结果可复现
// @Tags 趋势
// @Accept json
// @Produce json
// @Param request body models.TrendSampleRequest true "指标名、月数和随机种子"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Router /api/trend/sample [post]
func TrendSampleHandler(w http.ResponseWriter, r *http.Request) {
	var req models.TrendSampleRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	series, err := services.GenerateSampleSeries(req.Metric, req.Months, rng)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeUnsupportedMetric, err.Error(), map[string]interface{}{
			"supported": services.SupportedMetrics(),
		})
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"metric": req.Metric,
		"seed":   seed,
		"series": series,
	})
}

// ListInfluencersHandler godoc
// @Summary 获取影响者目录列表
// @Description 返回目录中全部影响者的精简视图
// @Tags 目录
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /api/influencers [get]
func ListInfluencersHandler(w http.ResponseWriter, r *http.Request, holder *services.EngineHolder) {
	engine := holder.Load()
	summaries := make([]models.InfluencerSummary, 0, engine.Size())
	for _, p := range engine.Profiles() {
		summaries = append(summaries, models.InfluencerSummary{
			Username:  p.Username,
			Category:  p.Category,
			Country:   p.Country,
			Followers: p.Metrics.Followers,
			Rank:      p.Rank.String(),
		})
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"count":       len(summaries),
		"influencers": summaries,
	})
}

// GetInfluencerHandler godoc
// @Summary 获取单个影响者详情
// @Description 按用户名查找影响者，@前缀可省略
// @Tags 目录
// @Produce json
// @Param username path string true "影响者用户名"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 404 {object} models.APIResponse "影响者不存在"
// @Router /api/influencers/{username} [get]
func GetInfluencerHandler(w http.ResponseWriter, r *http.Request, holder *services.EngineHolder) {
	username := chi.URLParam(r, "username")
	if !utils.ValidateUsername(w, username) {
		return
	}

	p, ok := holder.Load().Profile(username)
	if !ok {
		utils.WriteErrorResponse(w, models.CodeInfluencerNotFound, map[string]interface{}{
			"username": username,
		})
		return
	}
	utils.WriteSuccessResponse(w, p)
}

// HealthHandler godoc
// @Summary 服务健康检查
// @Description 返回目录规模、词表大小和引擎构建时间
// @Tags 系统
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /api/health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request, holder *services.EngineHolder) {
	engine := holder.Load()
	if engine == nil {
		utils.WriteErrorResponse(w, models.CodeEngineNotReady, map[string]interface{}{})
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"status":          "ok",
		"catalog_size":    engine.Size(),
		"vocabulary_size": engine.VocabularySize(),
		"built_at":        engine.BuiltAt(),
	})
}

// RegisterRoutes 注册全部路由
func RegisterRoutes(r *chi.Mux, cfg *config.Config, holder *services.EngineHolder) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Post("/api/match", func(w http.ResponseWriter, r *http.Request) {
		MatchHandler(w, r, holder)
	})

	r.Post("/api/recommendations", func(w http.ResponseWriter, r *http.Request) {
		RecommendationsHandler(w, r, holder)
	})

	r.Post("/api/regression", RegressionHandler)

	r.Post("/api/trend/sample", TrendSampleHandler)

	r.Get("/api/influencers", func(w http.ResponseWriter, r *http.Request) {
		ListInfluencersHandler(w, r, holder)
	})

	r.Get("/api/influencers/{username}", func(w http.ResponseWriter, r *http.Request) {
		GetInfluencerHandler(w, r, holder)
	})

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		HealthHandler(w, r, holder)
	})
}
