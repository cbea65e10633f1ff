package model

import "time"

// Comment 项目备注模型
// 创建后project_id不可变更
type Comment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID   int64     `gorm:"not null;index" json:"project_id"`
	CommentText string    `gorm:"size:1000;not null" json:"comment_text"`
	AddedBy     string    `gorm:"size:100;not null" json:"added_by"`
	AddedAt     time.Time `gorm:"not null;autoCreateTime" json:"added_at"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"-"`
}

func (Comment) TableName() string {
	return "pmo_comments"
}
