package service

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"buggie/internal/model"
	"buggie/internal/repository"
)

type testEnv struct {
	db         *gorm.DB
	userSvc    UserService
	projectSvc ProjectService
	bugSvc     BugService
}

// newTestEnv 创建临时SQLite数据库并组装服务层
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Project{}, &model.Bug{}))

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	bugRepo := repository.NewBugRepository(db)

	return &testEnv{
		db:         db,
		userSvc:    NewUserService(userRepo),
		projectSvc: NewProjectService(projectRepo),
		bugSvc:     NewBugService(bugRepo, projectRepo, userRepo),
	}
}

func (e *testEnv) countBugs(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&model.Bug{}).Count(&count).Error)
	return count
}
