package service

import (
	"fmt"

	"github.com/samber/lo"

	"buggie/internal/dto"
	"buggie/internal/model"
	"buggie/internal/repository"
	pkgErrors "buggie/pkg/errors"
)

type BugService interface {
	Create(req *dto.CreateBugRequest) (*dto.BugResponse, error)
	List() ([]*dto.BugResponse, error)
	GetByID(id int64) (*dto.BugResponse, error)
	Modify(id int64, req *dto.UpdateBugRequest) (*dto.BugResponse, error)
}

type bugService struct {
	bugRepo     repository.BugRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

func NewBugService(bugRepo repository.BugRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) BugService {
	return &bugService{
		bugRepo:     bugRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Create 创建缺陷
// 项目与指派人名称解析失败时直接返回，不写入任何数据
func (s *bugService) Create(req *dto.CreateBugRequest) (*dto.BugResponse, error) {
	assignedToID, err := s.resolveAssignee(req.AssignedToName)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByName(req.ProjectName)
	if err != nil {
		return nil, err
	}

	bug := &model.Bug{
		Title:        req.Title,
		Summary:      req.Summary,
		ProjectID:    project.ID,
		AssignedToID: assignedToID,
		State:        model.BugStateOpen,
	}

	if err := s.bugRepo.Create(bug); err != nil {
		return nil, err
	}

	return s.toResponse(bug), nil
}

func (s *bugService) List() ([]*dto.BugResponse, error) {
	bugs, err := s.bugRepo.FindAll()
	if err != nil {
		return nil, err
	}

	return lo.Map(bugs, func(b *model.Bug, _ int) *dto.BugResponse {
		return s.toResponse(b)
	}), nil
}

func (s *bugService) GetByID(id int64) (*dto.BugResponse, error) {
	bug, err := s.bugRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(bug), nil
}

// Modify 全量覆盖缺陷字段
// 状态校验与名称解析在任何写入之前完成，失败时原记录保持不变
func (s *bugService) Modify(id int64, req *dto.UpdateBugRequest) (*dto.BugResponse, error) {
	bug, err := s.bugRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	state := model.BugState(req.State)
	if !state.Valid() {
		return nil, pkgErrors.Wrap(pkgErrors.CodeBadRequest,
			fmt.Sprintf("缺陷状态必须是 %v 之一，收到 %s", model.ValidBugStates, req.State), nil)
	}

	assignedToID, err := s.resolveAssignee(req.AssignedToName)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByName(req.ProjectName)
	if err != nil {
		return nil, err
	}

	bug.Title = req.Title
	bug.Summary = req.Summary
	bug.ProjectID = project.ID
	bug.AssignedToID = assignedToID
	bug.State = state

	if err := s.bugRepo.Update(bug); err != nil {
		return nil, err
	}

	return s.toResponse(bug), nil
}

// resolveAssignee 按用户名解析指派人，未指派时返回nil
func (s *bugService) resolveAssignee(name *string) (*int64, error) {
	if name == nil {
		return nil, nil
	}

	user, err := s.userRepo.FindByName(*name)
	if err != nil {
		return nil, err
	}
	return &user.ID, nil
}

func (s *bugService) toResponse(bug *model.Bug) *dto.BugResponse {
	return &dto.BugResponse{
		ID:         bug.ID,
		Title:      bug.Title,
		Summary:    bug.Summary,
		Project:    bug.ProjectID,
		AssignedTo: bug.AssignedToID,
		State:      string(bug.State),
	}
}
