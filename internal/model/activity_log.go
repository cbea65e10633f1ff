package model

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog 管理操作审计日志, 只追加
type ActivityLog struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	Action    string            `gorm:"size:100;not null;index" json:"action"`
	Details   string            `gorm:"size:500" json:"details"`
	Meta      datatypes.JSONMap `gorm:"type:json" json:"meta,omitempty"` // 结构化上下文(实体ID等)
	UserID    string            `gorm:"size:50;not null;default:'system'" json:"user_id"`
	IPAddress string            `gorm:"size:50" json:"ip_address"`
	Timestamp time.Time         `gorm:"not null;autoCreateTime;index" json:"timestamp"`
}

func (ActivityLog) TableName() string {
	return "admin_activity_log"
}
