package dto

import "time"

// SummaryResponse 项目总览统计
type SummaryResponse struct {
	TotalProjects        int64           `json:"totalProjects"`
	ActiveProjects       int64           `json:"activeProjects"`
	DelayedProjects      int64           `json:"delayedProjects"`
	CompletedProjects    int64           `json:"completedProjects"`
	HighPriorityProjects int64           `json:"highPriorityProjects"`
	ThisMonthProjects    int64           `json:"thisMonthProjects"`
	LastUpdated          *time.Time      `json:"lastUpdated"`
	Summary              SummaryBreakout `json:"summary"`
}

// SummaryBreakout 总览统计的snake_case副本, 旧前端依赖此结构
type SummaryBreakout struct {
	TotalProjects         int64 `json:"total_projects"`
	ActiveProjects        int64 `json:"active_projects"`
	HighPriorityProjects  int64 `json:"high_priority_projects"`
	InDevelopmentProjects int64 `json:"in_development_projects"`
	CompletedProjects     int64 `json:"completed_projects"`
}

// MonthlyDistribution 按结束月份的项目分布
type MonthlyDistribution struct {
	EndMonth         string `json:"end_month"`
	ProjectCount     int    `json:"project_count"`
	ActiveCount      int    `json:"active_count"`
	DevelopmentCount int    `json:"development_count"`
}

// StatusCount 单个状态桶, 百分比四舍五入到0.1
type StatusCount struct {
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Status2Count 单个status2桶
type Status2Count struct {
	Status2    string  `json:"status2"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// StatusDistribution 状态分布
type StatusDistribution struct {
	Status  []StatusCount  `json:"status"`
	Status2 []Status2Count `json:"status2"`
}

// RecentActivityQuery 最近更新查询
type RecentActivityQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// RecentProject 最近更新的项目摘要
type RecentProject struct {
	ID           int64     `json:"id"`
	ProjectName  string    `json:"project_name"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	Status2      string    `json:"status2"`
	UpdatedAt    time.Time `json:"updated_at"`
	PMOComments  string    `json:"pmo_comments"`
}

// AccountManagerStats 客户经理维度统计
type AccountManagerStats struct {
	AccountManager        string `json:"account_manager"`
	TotalProjects         int    `json:"total_projects"`
	ActiveProjects        int    `json:"active_projects"`
	HighPriorityProjects  int    `json:"high_priority_projects"`
	InDevelopmentProjects int    `json:"in_development_projects"`
}

// PriorityCount 优先级桶
type PriorityCount struct {
	Priority   string  `json:"priority"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PhaseCount 阶段桶
type PhaseCount struct {
	CurrentPhase string  `json:"current_phase"`
	Count        int     `json:"count"`
	Percentage   float64 `json:"percentage"`
}

// EndMonthStats 结束月份维度统计
type EndMonthStats struct {
	EndMonth              string `json:"end_month"`
	TotalProjects         int    `json:"total_projects"`
	ActiveProjects        int    `json:"active_projects"`
	HighPriorityProjects  int    `json:"high_priority_projects"`
	InDevelopmentProjects int    `json:"in_development_projects"`
	CompletedProjects     int    `json:"completed_projects"`
}

// SimpleSummary 简化项目总览
type SimpleSummary struct {
	TotalProjects     int64 `json:"totalProjects"`
	ActiveProjects    int64 `json:"activeProjects"`
	DelayedProjects   int64 `json:"delayedProjects"`
	CompletedProjects int64 `json:"completedProjects"`
}
