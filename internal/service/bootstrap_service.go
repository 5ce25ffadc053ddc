package service

import (
	"errors"

	"gorm.io/gorm"

	"buggie/internal/dto"
	"buggie/internal/model"
)

// 首次启动时写入的演示数据
const (
	seedUsername     = "joebob"
	seedUserEmail    = "joebob@nowor.ky"
	seedUserTimezone = -6
	seedProjectName  = "worlddomination"
	seedProjectDesc  = "dominate the world"
	seedBugTitle     = "start world domination"
	seedBugSummary   = "The path to world domination starts with a single step. Take that first step."
)

type BootstrapService interface {
	Run() error
}

type bootstrapService struct {
	db         *gorm.DB
	userSvc    UserService
	projectSvc ProjectService
	bugSvc     BugService
}

func NewBootstrapService(db *gorm.DB, userSvc UserService, projectSvc ProjectService, bugSvc BugService) BootstrapService {
	return &bootstrapService{
		db:         db,
		userSvc:    userSvc,
		projectSvc: projectSvc,
		bugSvc:     bugSvc,
	}
}

// Run 首次启动初始化
// 探测 users 表 id=1：查到记录则认为已初始化，跳过；
// 表存在但无记录时只补齐表结构；其余探测失败一律按"表结构缺失"处理，
// 建表后写入种子数据。仅适用于单进程启动，不防并发竞争。
func (s *bootstrapService) Run() error {
	var probe model.User
	err := s.db.First(&probe, 1).Error
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.migrate()
	}

	if err := s.migrate(); err != nil {
		return err
	}
	return s.seed()
}

func (s *bootstrapService) migrate() error {
	return s.db.AutoMigrate(&model.User{}, &model.Project{}, &model.Bug{})
}

func (s *bootstrapService) seed() error {
	timezone := seedUserTimezone
	user, err := s.userSvc.Create(&dto.CreateUserRequest{
		Username: seedUsername,
		Email:    seedUserEmail,
		Timezone: &timezone,
	})
	if err != nil {
		return err
	}

	if _, err := s.projectSvc.Create(&dto.CreateProjectRequest{
		Name:        seedProjectName,
		Description: seedProjectDesc,
	}); err != nil {
		return err
	}

	_, err = s.bugSvc.Create(&dto.CreateBugRequest{
		Title:          seedBugTitle,
		Summary:        seedBugSummary,
		ProjectName:    seedProjectName,
		AssignedToName: &user.Username,
	})
	return err
}
