package model

// OptionType 下拉选项分类, 封闭枚举
// 自由格式的type字符串会破坏数据完整性, 校验层直接拒绝
type OptionType string

const (
	OptionTypeAccountManager OptionType = "account_manager"
	OptionTypeStatus         OptionType = "status"
	OptionTypeStatus2        OptionType = "status2"
	OptionTypePriority       OptionType = "priority"
	OptionTypeCurrentPhase   OptionType = "current_phase"
	OptionTypeEndMonth       OptionType = "end_month"
)

// OptionTypes 全部合法分类
var OptionTypes = []OptionType{
	OptionTypeAccountManager,
	OptionTypeStatus,
	OptionTypeStatus2,
	OptionTypePriority,
	OptionTypeCurrentPhase,
	OptionTypeEndMonth,
}

// DropdownOption 下拉选项模型
// (type, value) 组合唯一, 数据库唯一索引是最终权威
type DropdownOption struct {
	BaseModel
	Type        OptionType `gorm:"size:100;not null;uniqueIndex:uq_dropdown_type_value,priority:1" json:"type"`
	Value       string     `gorm:"size:255;not null;uniqueIndex:uq_dropdown_type_value,priority:2" json:"value"`
	Description string     `gorm:"size:500" json:"description"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
}

func (DropdownOption) TableName() string {
	return "dropdown_options"
}
