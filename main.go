package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/swaggo/swag" // 导入 swag

	"influencer_match/config"
	"influencer_match/db"
	_ "influencer_match/docs" // 导入 swagger 文档
	"influencer_match/handlers"
	"influencer_match/logger"
	"influencer_match/scheduler"
	"influencer_match/services"
)

func main() {
	cfg := config.Load()

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	// 目录数据源为mysql时才初始化连接池
	if strings.EqualFold(cfg.Catalog.Source, "mysql") {
		if err := db.InitMySQLWithConfig(cfg); err != nil {
			logger.Error("初始化MySQL失败", "error", err)
			os.Exit(1)
		}
		logger.Info("MySQL连接成功", "database", cfg.DB.Database, "table", cfg.Catalog.Table)
	}

	// 目录加载失败是致命错误，不允许带着空目录对外服务
	engine, err := services.BuildEngine(cfg)
	if err != nil {
		logger.Error("匹配引擎构建失败", "error", err)
		os.Exit(1)
	}
	holder := services.NewEngineHolder(engine)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	handlers.RegisterRoutes(r, cfg, holder)

	// 启动每日目录重建调度
	scheduler.Start(cfg, holder)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("服务器启动", "address", serverAddr, "catalog_size", engine.Size())
	logger.Info("Swagger文档可访问", "url", fmt.Sprintf("http://%s/swagger/index.html", serverAddr))
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, r))
}
