package handler

import (
	"github.com/gin-gonic/gin"

	"buggie/internal/dto"
	"buggie/internal/service"
	pkgErrors "buggie/pkg/errors"
	"buggie/pkg/responses"
	"buggie/pkg/utils"
)

type BugHandler struct {
	bugService service.BugService
}

func NewBugHandler(bugService service.BugService) *BugHandler {
	return &BugHandler{bugService: bugService}
}

// List 查询缺陷列表
func (h *BugHandler) List(c *gin.Context) {
	bugs, err := h.bugService.List()
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, bugs)
}

// Create 创建缺陷
func (h *BugHandler) Create(c *gin.Context) {
	var req dto.CreateBugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	bug, err := h.bugService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, bug)
}

// GetByID 查询缺陷详情
func (h *BugHandler) GetByID(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	bug, err := h.bugService.GetByID(param.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, bug)
}

// Modify 更新缺陷
func (h *BugHandler) Modify(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	var req dto.UpdateBugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	bug, err := h.bugService.Modify(param.ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, bug)
}
