package service

import (
	"github.com/samber/lo"

	"buggie/internal/dto"
	"buggie/internal/model"
	"buggie/internal/repository"
)

type ProjectService interface {
	Create(req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	List() ([]*dto.ProjectResponse, error)
	GetByID(id int64) (*dto.ProjectResponse, error)
	GetByName(name string) (*dto.ProjectResponse, error)
	Modify(id int64, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Deactivate(id int64) (*dto.ProjectResponse, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) Create(req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}

	return s.toResponse(project), nil
}

func (s *projectService) List() ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return nil, err
	}

	return lo.Map(projects, func(p *model.Project, _ int) *dto.ProjectResponse {
		return s.toResponse(p)
	}), nil
}

func (s *projectService) GetByID(id int64) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project), nil
}

func (s *projectService) GetByName(name string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project), nil
}

// Modify 全量覆盖名称与描述
func (s *projectService) Modify(id int64, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	project.Name = req.Name
	project.Description = req.Description

	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	return s.toResponse(project), nil
}

// Deactivate 停用项目（软删除）
func (s *projectService) Deactivate(id int64) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	project.Active = false

	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	return s.toResponse(project), nil
}

func (s *projectService) toResponse(project *model.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Active:      project.Active,
	}
}
