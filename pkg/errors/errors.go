package errors

import "fmt"

// 错误码
const (
	CodeSuccess          = 200
	CodeBadRequest       = 400
	CodeNotFound         = 404
	CodeMethodNotAllowed = 405
	CodeNotImplemented   = 501
	CodeInternalError    = 500
	CodeDatabaseError    = 502
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// New 创建新错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// 预定义错误
var (
	ErrBadRequest    = New(CodeBadRequest, "请求参数错误")
	ErrNotFound      = New(CodeNotFound, "资源不存在")
	ErrInternalError = New(CodeInternalError, "内部服务器错误")
	ErrDatabaseError = New(CodeDatabaseError, "数据库错误")

	// 具体业务错误
	ErrInvalidParams    = New(CodeBadRequest, "请求参数错误")
	ErrRecordNotFound   = New(CodeNotFound, "记录不存在")
	ErrUserNotFound     = New(CodeNotFound, "用户不存在")
	ErrProjectNotFound  = New(CodeNotFound, "项目不存在")
	ErrBugNotFound      = New(CodeNotFound, "缺陷不存在")
	ErrInvalidBugState  = New(CodeBadRequest, "缺陷状态不合法")
	ErrMethodNotAllowed = New(CodeMethodNotAllowed, "不支持的操作")
)
