package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"buggie/internal/api/handler"
	"buggie/internal/api/middleware"
	"buggie/internal/pkg/config"
	"buggie/internal/repository"
	"buggie/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	bugRepo := repository.NewBugRepository(db)

	// 初始化Service
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo)
	bugService := service.NewBugService(bugRepo, projectRepo, userRepo)

	// 初始化Handler
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	bugHandler := handler.NewBugHandler(bugService)

	// 用户管理
	users := r.Group("/users")
	{
		users.GET("", userHandler.List)                     // 用户列表
		users.POST("", userHandler.Create)                  // 创建用户
		users.PUT("", userHandler.InvalidCollectionOp)      // 集合级更新不支持
		users.DELETE("", userHandler.InvalidCollectionOp)   // 集合级删除不支持
		users.GET("/:id", userHandler.GetByID)              // 用户详情
		users.PUT("/:id", userHandler.Modify)               // 更新用户
		users.DELETE("/:id", userHandler.Deactivate)        // 停用用户
		users.POST("/:id", userHandler.InvalidItemOp)       // 单个资源不支持POST
	}

	// 项目管理
	projects := r.Group("/projects")
	{
		projects.GET("", projectHandler.List)              // 项目列表
		projects.POST("", projectHandler.Create)           // 创建项目
		projects.GET("/:id", projectHandler.GetByID)       // 项目详情
		projects.PUT("/:id", projectHandler.Modify)        // 更新项目
		projects.DELETE("/:id", projectHandler.Deactivate) // 停用项目
	}

	// 缺陷管理（缺陷不提供删除）
	bugs := r.Group("/bugs")
	{
		bugs.GET("", bugHandler.List)        // 缺陷列表
		bugs.POST("", bugHandler.Create)     // 创建缺陷
		bugs.GET("/:id", bugHandler.GetByID) // 缺陷详情
		bugs.PUT("/:id", bugHandler.Modify)  // 更新缺陷
	}

	return r
}
