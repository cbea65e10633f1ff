package model

// 用户角色, 封闭枚举
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// User 用户模型
type User struct {
	BaseModel
	Username     string `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email        string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"` // 不返回到前端
	Role         string `gorm:"size:20;not null" json:"role"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`
}

func (User) TableName() string {
	return "users"
}
