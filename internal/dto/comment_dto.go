package dto

import "time"

// CommentRequest 创建/更新备注请求
type CommentRequest struct {
	CommentText string `json:"comment_text" binding:"required,min=1,max=1000"`
	AddedBy     string `json:"added_by" binding:"required,min=1,max=100"`
}

// CommentHistoryQuery 全局备注历史查询
type CommentHistoryQuery struct {
	RangeQuery
	ProjectID int64 `form:"project_id" binding:"omitempty,min=1"`
}

// CommentResponse 备注响应, 附带展示用的定宽时间和冗余的项目信息
type CommentResponse struct {
	ID            int64     `json:"id"`
	ProjectID     int64     `json:"project_id"`
	CommentText   string    `json:"comment_text"`
	AddedBy       string    `json:"added_by"`
	AddedAt       time.Time `json:"added_at"`
	FormattedTime string    `json:"formatted_time"`
	ProjectName   string    `json:"project_name"`
	CustomerName  string    `json:"customer_name"`
}

// CommentStats 备注统计
type CommentStats struct {
	TotalComments        int64 `json:"total_comments"`
	ProjectsWithComments int64 `json:"projects_with_comments"`
	RecentComments       int64 `json:"recent_comments"` // 最近7天
}
