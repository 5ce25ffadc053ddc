package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"buggie/internal/dto"
	"buggie/internal/pkg/logger"
	"buggie/internal/service"
	pkgErrors "buggie/pkg/errors"
	"buggie/pkg/responses"
	"buggie/pkg/utils"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List 查询用户列表
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, users)
}

// Create 创建用户
// 请求体不是合法JSON或缺少必填字段时返回400
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Info(fmt.Sprintf("Invalid data passed as post to /users: %s", utils.FormatValidationError(err)))
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, user)
}

// GetByID 查询用户详情
func (h *UserHandler) GetByID(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.GetByID(param.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, user)
}

// Modify 更新用户
func (h *UserHandler) Modify(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Info(fmt.Sprintf("Invalid data passed as put to /users/%d: %s", param.ID, utils.FormatValidationError(err)))
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.Modify(param.ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, user)
}

// Deactivate 停用用户
// 删除统一实现为软删除，成功返回纯文本OK
func (h *UserHandler) Deactivate(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	if _, err := h.userService.Deactivate(param.ID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.OK(c)
}

// InvalidCollectionOp 集合资源不支持的操作
func (h *UserHandler) InvalidCollectionOp(c *gin.Context) {
	logger.Warn(fmt.Sprintf("Attempted %s on /users", c.Request.Method))
	responses.Error(c, pkgErrors.ErrMethodNotAllowed)
}

// InvalidItemOp 单个资源不支持的操作
func (h *UserHandler) InvalidItemOp(c *gin.Context) {
	logger.Warn(fmt.Sprintf("Attempted %s on %s", c.Request.Method, c.Request.URL.Path))
	responses.Error(c, pkgErrors.ErrMethodNotAllowed)
}
