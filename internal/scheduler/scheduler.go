package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"pmo-dashboard/internal/pkg/config"
	"pmo-dashboard/internal/pkg/logger"
	"pmo-dashboard/internal/service"
)

// Scheduler 定时任务调度器
type Scheduler struct {
	cron        *cron.Cron
	activitySvc service.ActivityService
	cfg         *config.RetentionConfig
}

// NewScheduler 创建调度器
func NewScheduler(activitySvc service.ActivityService, cfg *config.RetentionConfig) *Scheduler {
	// 创建 cron 实例（带秒级支持）
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:        c,
		activitySvc: activitySvc,
		cfg:         cfg,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() error {
	logger.Info("启动定时任务调度器...")

	days := s.cfg.ActivityLogDays
	if days <= 0 {
		logger.Info("未配置审计日志保留天数, 跳过清理任务")
		return nil
	}

	// cron 表达式格式: 秒 分 时 日 月 周
	cronExpr := s.cfg.Cron
	if cronExpr == "" {
		cronExpr = "0 0 3 * * *" // 默认: 每天凌晨3点
		logger.Warn("未配置retention.cron，使用默认值", zap.String("cron", cronExpr))
	}

	_, err := s.cron.AddFunc(cronExpr, func() {
		logger.Info("执行定时任务: 审计日志清理", zap.Int("retention_days", days))
		deleted, err := s.activitySvc.PurgeOlderThan(days)
		if err != nil {
			logger.Error("审计日志清理失败", zap.Error(err))
			return
		}
		logger.Info("审计日志清理完成", zap.Int64("deleted", deleted))
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop 停止调度器, 等待运行中的任务结束
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("定时任务调度器已停止")
}
