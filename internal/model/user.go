package model

const UserTableName = "users"

// User 用户模型
// username/email 不做唯一约束，沿用历史行为
type User struct {
	BaseModel
	Username string `gorm:"size:100;not null" json:"username"`
	Email    string `gorm:"size:100;not null" json:"email"`
	Timezone int    `gorm:"not null;default:0" json:"timezone"` // UTC偏移量
	Active   bool   `gorm:"not null;default:true" json:"active"`
}

func (User) TableName() string {
	return UserTableName
}
