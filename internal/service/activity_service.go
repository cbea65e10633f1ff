package service

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/pkg/logger"
	"pmo-dashboard/internal/repository"
)

// 审计动作
const (
	ActionCreateOption   = "CREATE_OPTION"
	ActionUpdateOption   = "UPDATE_OPTION"
	ActionDeleteOption   = "DELETE_OPTION"
	ActionCreateUser     = "CREATE_USER"
	ActionUpdateUser     = "UPDATE_USER"
	ActionToggleUser     = "TOGGLE_USER_STATUS"
	ActionUpdateSettings = "UPDATE_SETTINGS"
)

type ActivityService interface {
	// Record 记录管理操作, 尽力而为: 写入失败只记日志, 不影响主操作
	Record(action, details string, meta map[string]interface{}, userID, ip string)
	List(query *dto.RangeQuery) ([]*model.ActivityLog, int64, error)
	PurgeOlderThan(days int) (int64, error)
}

type activityService struct {
	activityRepo repository.ActivityLogRepository
}

func NewActivityService(activityRepo repository.ActivityLogRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

func (s *activityService) Record(action, details string, meta map[string]interface{}, userID, ip string) {
	if userID == "" {
		userID = "system"
	}

	entry := &model.ActivityLog{
		Action:    action,
		Details:   details,
		Meta:      datatypes.JSONMap(meta),
		UserID:    userID,
		IPAddress: ip,
	}

	if err := s.activityRepo.Create(entry); err != nil {
		logger.Warn("审计日志写入失败",
			zap.String("action", action),
			zap.Error(err))
	}
}

func (s *activityService) List(query *dto.RangeQuery) ([]*model.ActivityLog, int64, error) {
	return s.activityRepo.List(query.GetLimit(100), query.GetOffset())
}

// PurgeOlderThan 清理留存期之外的审计日志, 定时任务调用
func (s *activityService) PurgeOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	return s.activityRepo.DeleteOlderThan(cutoff)
}
