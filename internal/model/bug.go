package model

const BugTableName = "bugs"

// BugState 缺陷状态
type BugState string

const (
	BugStateOpen     BugState = "OPEN"
	BugStateResolved BugState = "RESOLVED"
	BugStateInvalid  BugState = "INVALID"
)

// ValidBugStates 合法的缺陷状态列表
var ValidBugStates = []BugState{BugStateOpen, BugStateResolved, BugStateInvalid}

// Valid 校验缺陷状态是否合法
func (s BugState) Valid() bool {
	for _, state := range ValidBugStates {
		if s == state {
			return true
		}
	}
	return false
}

// Bug 缺陷模型
// 必须归属一个项目，可选指派一个用户
type Bug struct {
	BaseModel
	Title        string   `gorm:"size:200;not null" json:"title"`
	Summary      string   `gorm:"type:text" json:"summary"`
	ProjectID    int64    `gorm:"not null;index" json:"project_id"`
	AssignedToID *int64   `gorm:"index" json:"assignedto_id"`
	State        BugState `gorm:"size:16;not null;default:'OPEN'" json:"state"`

	Project    *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	AssignedTo *User    `gorm:"foreignKey:AssignedToID" json:"assignedto,omitempty"`
}

func (Bug) TableName() string {
	return BugTableName
}
