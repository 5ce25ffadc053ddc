package dto

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,max=100"`
	Timezone *int   `json:"timezone" binding:"required"` // 指针以区分缺失与UTC(0)
}

// UpdateUserRequest 更新用户请求
// 全量覆盖三个可变字段，不支持局部更新
type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,max=100"`
	Timezone *int   `json:"timezone" binding:"required"`
}

// UserResponse 用户响应
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Timezone int    `json:"timezone"`
	Active   bool   `json:"active"`
}
