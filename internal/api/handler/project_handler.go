package handler

import (
	"github.com/gin-gonic/gin"

	"buggie/internal/dto"
	"buggie/internal/service"
	pkgErrors "buggie/pkg/errors"
	"buggie/pkg/responses"
	"buggie/pkg/utils"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List 查询项目列表
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, projects)
}

// Create 创建项目
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, project)
}

// GetByID 查询项目详情
func (h *ProjectHandler) GetByID(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.GetByID(param.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, project)
}

// Modify 更新项目
func (h *ProjectHandler) Modify(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Modify(param.ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, project)
}

// Deactivate 停用项目，成功返回纯文本OK
func (h *ProjectHandler) Deactivate(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.ErrorWithCode(c, pkgErrors.CodeBadRequest, utils.FormatValidationError(err))
		return
	}

	if _, err := h.projectService.Deactivate(param.ID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.OK(c)
}
