package dto

// OptionRequest 创建/更新下拉选项请求
// type为封闭枚举, 自由格式分类直接拒绝
type OptionRequest struct {
	Type        string `json:"type" binding:"required,oneof=account_manager status status2 priority current_phase end_month"`
	Value       string `json:"value" binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool  `json:"is_active" binding:"omitempty"`
}
