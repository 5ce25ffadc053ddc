package model

const ProjectTableName = "projects"

// Project 项目模型
type Project struct {
	BaseModel
	Name        string `gorm:"size:100;not null;index" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Active      bool   `gorm:"not null;default:true" json:"active"`
}

func (Project) TableName() string {
	return ProjectTableName
}
