package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"influencer_match/config"
	"influencer_match/logger"
	"influencer_match/models"
	"influencer_match/repository"
)

// LoadCatalog 加载影响者目录快照并完成启动期预处理：
// 派生用户名（去掉@前缀）、应用类目增强映射（只覆盖一次）、归一化全部指标。
// 目录缺失或损坏是致命错误，进程不应带着空目录对外服务。
func LoadCatalog(cfg *config.Config) ([]models.InfluencerProfile, error) {
	var (
		profiles []models.InfluencerProfile
		err      error
	)
	switch strings.ToLower(cfg.Catalog.Source) {
	case "mysql":
		profiles, err = repository.ListInfluencers(cfg.Catalog.Table)
	default:
		profiles, err = loadCatalogFile(cfg.Catalog.Path)
	}
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, errors.New("目录快照为空")
	}

	enriched, err := loadEnrichmentFile(cfg.Catalog.EnrichedPath)
	if err != nil {
		// 增强映射是可选输入，损坏时保留原始类目继续启动
		logger.Warn("类目增强映射加载失败，保留原始类目", "path", cfg.Catalog.EnrichedPath, "error", err)
		enriched = nil
	}

	prepareProfiles(profiles, enriched)
	logger.Info("目录加载完成", "source", cfg.Catalog.Source, "profiles", len(profiles), "enriched", len(enriched))
	return profiles, nil
}

func loadCatalogFile(path string) ([]models.InfluencerProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取目录文件失败: %w", err)
	}
	var profiles []models.InfluencerProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("解析目录文件失败: %w", err)
	}
	return profiles, nil
}

// loadEnrichmentFile 加载 用户名->类目 的增强映射，文件不存在视为没有增强
func loadEnrichmentFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var enriched map[string]string
	if err := json.Unmarshal(data, &enriched); err != nil {
		return nil, err
	}
	cleaned := make(map[string]string, len(enriched))
	for username, category := range enriched {
		username = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(username), "@"))
		category = strings.TrimSpace(category)
		if username == "" || category == "" {
			continue
		}
		cleaned[username] = category
	}
	return cleaned, nil
}

// prepareProfiles 原地完成用户名派生、类目覆盖和指标归一化。
// 这是记录唯一允许被改写的时机，加载完成后目录视为不可变。
func prepareProfiles(profiles []models.InfluencerProfile, enriched map[string]string) {
	for i := range profiles {
		p := &profiles[i]
		p.Username = strings.TrimPrefix(strings.TrimSpace(p.ChannelInfo), "@")
		if category, ok := enriched[strings.ToLower(p.Username)]; ok {
			p.Category = category
		}
		p.Metrics = NormalizeProfile(p)
	}
}
