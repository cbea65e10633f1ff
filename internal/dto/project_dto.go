package dto

// ProjectRequest 创建/更新项目请求, 两者校验契约一致
type ProjectRequest struct {
	CustomerName   string `json:"customer_name" binding:"omitempty,max=255"`
	ProjectName    string `json:"project_name" binding:"required,max=255"`
	AccountManager string `json:"account_manager" binding:"omitempty,max=255"`
	Status         string `json:"status" binding:"omitempty,max=100"`
	CurrentPhase   string `json:"current_phase" binding:"omitempty,max=255"`
	Priority       string `json:"priority" binding:"omitempty,max=50"`
	EndMonth       string `json:"end_month" binding:"omitempty,max=50"`
	Status2        string `json:"status2" binding:"omitempty,max=100"`
	PMOComments    string `json:"pmo_comments"`
}

// ProjectListQuery 项目列表查询
// customer_name/project_name/account_manager为不区分大小写的子串匹配, 其余为等值过滤
type ProjectListQuery struct {
	RangeQuery
	CustomerName   string `form:"customer_name"`
	ProjectName    string `form:"project_name"`
	AccountManager string `form:"account_manager"`
	Status         string `form:"status"`
	Status2        string `form:"status2"`
	Priority       string `form:"priority"`
	EndMonth       string `form:"end_month"`
}

// ProjectFilterValues 过滤器候选值(去重后的非空取值)
type ProjectFilterValues struct {
	Statuses        []string `json:"statuses"`
	Status2s        []string `json:"status2s"`
	Priorities      []string `json:"priorities"`
	EndMonths       []string `json:"endMonths"`
	AccountManagers []string `json:"accountManagers"`
}

// SimpleProjectRequest 创建/更新简化项目请求
type SimpleProjectRequest struct {
	Project  string `json:"project" binding:"required,max=255"`
	Month    string `json:"month" binding:"omitempty,max=10"`
	Status   string `json:"status" binding:"omitempty,max=100"`
	Comments string `json:"comments"`
}

// SimpleProjectListQuery 简化项目列表查询
type SimpleProjectListQuery struct {
	RangeQuery
	Project string `form:"project"`
	Month   string `form:"month"`
	Status  string `form:"status"`
}

// SimpleProjectFilterValues 简化项目过滤器候选值
type SimpleProjectFilterValues struct {
	Statuses []string `json:"statuses"`
	Months   []string `json:"months"`
}
