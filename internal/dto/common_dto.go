package dto

// IDParam ID路径参数
type IDParam struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}
