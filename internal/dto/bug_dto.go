package dto

// CreateBugRequest 创建缺陷请求
// 项目与指派人按名称引用，由服务层解析为具体记录
type CreateBugRequest struct {
	Title          string  `json:"title" binding:"required,max=200"`
	Summary        string  `json:"summary"`
	ProjectName    string  `json:"project_name" binding:"required,max=100"`
	AssignedToName *string `json:"assignedto_name" binding:"omitempty,max=100"`
}

// UpdateBugRequest 更新缺陷请求
// state由服务层校验，不在绑定层做枚举约束
type UpdateBugRequest struct {
	Title          string  `json:"title" binding:"required,max=200"`
	Summary        string  `json:"summary"`
	ProjectName    string  `json:"project_name" binding:"required,max=100"`
	State          string  `json:"state" binding:"required"`
	AssignedToName *string `json:"assignedto_name" binding:"omitempty,max=100"`
}

// BugResponse 缺陷响应
// project/assignedto 序列化为关联记录的ID，未指派时assignedto为null
type BugResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Project    int64  `json:"project"`
	AssignedTo *int64 `json:"assignedto"`
	State      string `json:"state"`
}
