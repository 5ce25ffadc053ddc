package service

import (
	"github.com/samber/lo"

	"buggie/internal/dto"
	"buggie/internal/model"
	"buggie/internal/repository"
)

type UserService interface {
	Create(req *dto.CreateUserRequest) (*dto.UserResponse, error)
	List() ([]*dto.UserResponse, error)
	GetByID(id int64) (*dto.UserResponse, error)
	GetByName(username string) (*dto.UserResponse, error)
	Modify(id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Deactivate(id int64) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Create 创建用户
// username/email 不做唯一性与格式校验，沿用历史行为
func (s *userService) Create(req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Timezone: *req.Timezone,
		Active:   true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.toResponse(user), nil
}

// List 查询所有用户，不分页
func (s *userService) List() ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	return lo.Map(users, func(u *model.User, _ int) *dto.UserResponse {
		return s.toResponse(u)
	}), nil
}

func (s *userService) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(user), nil
}

func (s *userService) GetByName(username string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByName(username)
	if err != nil {
		return nil, err
	}
	return s.toResponse(user), nil
}

// Modify 全量覆盖三个可变字段
func (s *userService) Modify(id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Timezone = *req.Timezone

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.toResponse(user), nil
}

// Deactivate 停用用户（软删除）
// 不级联处理已指派给该用户的缺陷
func (s *userService) Deactivate(id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	user.Active = false

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.toResponse(user), nil
}

func (s *userService) toResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Timezone: user.Timezone,
		Active:   user.Active,
	}
}
