package model

import "time"

// SystemSetting 系统设置, 按setting_key做insert-or-replace
type SystemSetting struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SettingKey   string    `gorm:"size:100;not null;uniqueIndex" json:"setting_key"`
	SettingValue string    `gorm:"type:text" json:"setting_value"` // 统一字符串编码
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}
