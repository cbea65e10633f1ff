package model

// Project 项目模型
type Project struct {
	BaseModel
	CustomerName   string `gorm:"size:255;index" json:"customer_name"`
	ProjectName    string `gorm:"size:255;not null" json:"project_name"`
	AccountManager string `gorm:"size:255;index" json:"account_manager"`
	Status         string `gorm:"size:100;index" json:"status"`
	CurrentPhase   string `gorm:"size:255" json:"current_phase"`
	Priority       string `gorm:"size:50;index" json:"priority"`
	EndMonth       string `gorm:"size:50;index" json:"end_month"`
	Status2        string `gorm:"size:100;index" json:"status2"`
	PMOComments    string `gorm:"column:pmo_comments;type:text" json:"pmo_comments"`
}

func (Project) TableName() string {
	return "projects"
}

// SimpleProject 简化项目模型, 与Project相互独立, 无外键关系
type SimpleProject struct {
	BaseModel
	Project  string `gorm:"column:project;size:255;not null" json:"project"`
	Month    string `gorm:"size:10;index" json:"month"`
	Status   string `gorm:"size:100;index" json:"status"`
	Comments string `gorm:"type:text" json:"comments"`
}

func (SimpleProject) TableName() string {
	return "simple_projects"
}
