package scheduler

import (
	"sync"
	"time"

	"influencer_match/config"
	"influencer_match/logger"
	"influencer_match/services"
)

// 将秒数转换为时间间隔
func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// 验证小时和分钟是否有效
func validateHourMinute(hour, minute int) (int, int) {
	if hour < 0 || hour > 23 {
		logger.Warn("无效的小时值", "hour", hour)
		hour = 3
	}
	if minute < 0 || minute > 59 {
		logger.Warn("无效的分钟值", "minute", minute)
		minute = 0
	}
	return hour, minute
}

// 计算下一个指定时间点
func getNextTimePoint(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// Scheduler 目录重建调度器：每天在配置的时间点重新加载目录快照、
// 重新拟合词表，并把新引擎原子替换进持有者。
type Scheduler struct {
	cfg     *config.Config
	holder  *services.EngineHolder
	nextRun time.Time
	lastRun time.Time
	running bool
	mutex   sync.Mutex
}

// NewScheduler 创建新的调度器
func NewScheduler(cfg *config.Config, holder *services.EngineHolder) *Scheduler {
	return &Scheduler{cfg: cfg, holder: holder}
}

// Start 启动调度循环（非阻塞）
func Start(cfg *config.Config, holder *services.EngineHolder) {
	NewScheduler(cfg, holder).Run()
}

// Run 启动后台检查循环
func (s *Scheduler) Run() {
	hour, minute := validateHourMinute(s.cfg.Scheduler.ReloadHour, s.cfg.Scheduler.ReloadMinute)
	s.nextRun = getNextTimePoint(time.Now(), hour, minute)

	interval := secondsToDuration(s.cfg.Scheduler.CheckIntervalSec)
	logger.Info("目录重建调度器已启动", "next_run", s.nextRun, "check_interval", interval)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for now := range ticker.C {
			s.maybeRebuild(now, hour, minute)
		}
	}()
}

// maybeRebuild 到达时间点时执行重建，重建期间跳过后续触发
func (s *Scheduler) maybeRebuild(now time.Time, hour, minute int) {
	s.mutex.Lock()
	if s.running || now.Before(s.nextRun) {
		s.mutex.Unlock()
		return
	}
	s.running = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.lastRun = now
		s.nextRun = getNextTimePoint(now.Add(time.Minute), hour, minute)
		s.mutex.Unlock()
	}()

	logger.Info("开始定时重建匹配引擎")
	engine, err := services.BuildEngine(s.cfg)
	if err != nil {
		// 重建失败时继续使用旧引擎服务
		logger.Error("定时重建失败，继续使用当前引擎", "error", err)
		return
	}
	s.holder.Swap(engine)
	logger.Info("匹配引擎已原子替换", "profiles", engine.Size(), "vocabulary", engine.VocabularySize())
}
