package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "buggie/pkg/errors"
)

// JSON 成功响应
// 原样输出实体JSON，不包装信封，与历史接口保持一致
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// OK 纯文本成功响应
func OK(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Error 错误响应
// AppError的错误码直接作为HTTP状态码，错误信息以纯文本返回
func Error(c *gin.Context, err error) {
	if appErr, ok := err.(*pkgErrors.AppError); ok {
		c.String(httpStatus(appErr.Code), appErr.Message)
		return
	}

	// 未知错误按内部错误处理
	c.String(http.StatusInternalServerError, err.Error())
}

// ErrorWithCode 自定义错误响应
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.String(httpStatus(code), message)
}

// httpStatus 错误码转HTTP状态码
// 数据库错误等内部错误码折叠为500
func httpStatus(code int) int {
	switch code {
	case pkgErrors.CodeBadRequest:
		return http.StatusBadRequest
	case pkgErrors.CodeNotFound:
		return http.StatusNotFound
	case pkgErrors.CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case pkgErrors.CodeNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
