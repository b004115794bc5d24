package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campushub/backend/internal/app/controllers"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/db"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/auth"
)

// Dependencies carries everything the router wires together.
type Dependencies struct {
	JWTService  *auth.JWTService
	RateLimiter *middleware.RateLimiter

	AuthController        *controllers.AuthController
	CourseController      *controllers.CourseController
	AssignmentController  *controllers.AssignmentController
	MaterialController    *controllers.MaterialController
	AttendanceController  *controllers.AttendanceController
	PlacementController   *controllers.PlacementController
	ApplicationController *controllers.ApplicationController
	NoticeController      *controllers.NoticeController
	AdminController       *controllers.AdminController

	Postgres *db.PostgresDB
	Redis    *db.Redis
}

// Register mounts every route on the engine.
func Register(engine *gin.Engine, deps *Dependencies) {
	engine.Use(middleware.RequestLogger(), middleware.Metrics())
	if deps.RateLimiter != nil {
		engine.Use(deps.RateLimiter.Middleware())
	}

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api/v1")

	api.GET("/health", healthHandler(deps.Postgres, deps.Redis))

	// public
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", deps.AuthController.Register)
		authGroup.POST("/login", deps.AuthController.Login)
		authGroup.GET("/check", deps.AuthController.CheckExists)
	}
	noticeGroup := api.Group("/notice")
	{
		noticeGroup.GET("", deps.NoticeController.List)
		noticeGroup.GET("/:id", deps.NoticeController.Get)
	}

	// authenticated
	authenticated := api.Group("")
	authenticated.Use(middleware.Authenticate(deps.JWTService))
	{
		authenticated.GET("/auth/me", deps.AuthController.GetProfile)
		authenticated.PUT("/auth/me", deps.AuthController.UpdateProfile)
		authenticated.GET("/profile", deps.AuthController.GetProfile)
		authenticated.PUT("/profile", deps.AuthController.UpdateProfile)

		courses := authenticated.Group("/courses")
		{
			courses.GET("", deps.CourseController.List)
			courses.GET("/:id", deps.CourseController.Get)
			courses.GET("/:id/students", deps.CourseController.Students)

			teacherOnly := courses.Group("")
			teacherOnly.Use(middleware.RequireRole(models.RoleTeacher, models.RoleAdmin))
			{
				teacherOnly.POST("", deps.CourseController.Create)
				teacherOnly.PUT("/:id", deps.CourseController.Update)
				teacherOnly.DELETE("/:id", deps.CourseController.Delete)
				teacherOnly.POST("/:id/students", deps.CourseController.Enroll)
				teacherOnly.DELETE("/:id/students/:studentId", deps.CourseController.Unenroll)
			}
		}

		assignments := authenticated.Group("/assignments")
		{
			assignments.GET("", deps.AssignmentController.List)
			assignments.GET("/:id", deps.AssignmentController.Get)

			teacherOnly := assignments.Group("")
			teacherOnly.Use(middleware.RequireRole(models.RoleTeacher, models.RoleAdmin))
			{
				teacherOnly.POST("", deps.AssignmentController.Create)
				teacherOnly.PUT("/:id", deps.AssignmentController.Update)
				teacherOnly.DELETE("/:id", deps.AssignmentController.Delete)
			}
		}

		materials := authenticated.Group("/materials")
		{
			materials.GET("", deps.MaterialController.List)
			materials.GET("/:id", deps.MaterialController.Get)

			teacherOnly := materials.Group("")
			teacherOnly.Use(middleware.RequireRole(models.RoleTeacher, models.RoleAdmin))
			{
				teacherOnly.POST("", deps.MaterialController.Create)
				teacherOnly.PUT("/:id", deps.MaterialController.Update)
				teacherOnly.DELETE("/:id", deps.MaterialController.Delete)
			}
		}

		attendance := authenticated.Group("/attendance")
		{
			attendance.POST("",
				middleware.RequireRole(models.RoleTeacher, models.RoleAdmin),
				deps.AttendanceController.Mark)
			attendance.GET("/course/:courseId", deps.AttendanceController.ListByCourse)
			attendance.GET("/course/:courseId/date/:date", deps.AttendanceController.GetByDate)
			attendance.GET("/statistics/course/:courseId/student/:studentId", deps.AttendanceController.StudentStatistics)
			attendance.GET("/summary/course/:courseId", deps.AttendanceController.CourseSummary)
		}

		placements := authenticated.Group("/placements")
		{
			placements.GET("", deps.PlacementController.List)
			placements.GET("/:id", deps.PlacementController.Get)

			adminOnly := placements.Group("")
			adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
			{
				adminOnly.POST("", deps.PlacementController.Create)
				adminOnly.PUT("/:id", deps.PlacementController.Update)
				adminOnly.DELETE("/:id", deps.PlacementController.Delete)
				adminOnly.PUT("/:id/toggle-active", deps.PlacementController.ToggleActive)
				adminOnly.GET("/:id/applications", deps.PlacementController.Applications)
			}
		}

		applications := authenticated.Group("/applications")
		{
			applications.POST("",
				middleware.RequireRole(models.RoleStudent),
				deps.ApplicationController.Apply)
			applications.GET("/my-applications",
				middleware.RequireRole(models.RoleStudent),
				deps.ApplicationController.ListMine)
			applications.GET("/:id", deps.ApplicationController.Get)
			applications.DELETE("/:id", deps.ApplicationController.Withdraw)
			applications.PUT("/:id/status",
				middleware.RequireRole(models.RoleAdmin),
				deps.ApplicationController.UpdateStatus)
		}

		noticeAdmin := authenticated.Group("/notice")
		noticeAdmin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			noticeAdmin.POST("", deps.NoticeController.Create)
			noticeAdmin.PUT("/:id", deps.NoticeController.Update)
			noticeAdmin.DELETE("/:id", deps.NoticeController.Delete)
		}

		admin := authenticated.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", deps.AdminController.ListUsers)
			admin.GET("/users/:id", deps.AdminController.GetUser)
			admin.POST("/users", deps.AdminController.CreateUser)
			admin.DELETE("/users/:id", deps.AdminController.DeleteUser)
			admin.GET("/stats", deps.AdminController.Dashboard)
			admin.GET("/placements", deps.PlacementController.List)
			admin.POST("/maintenance/orphan-sweep", deps.AdminController.SweepOrphans)
		}
	}
}

// healthHandler reports database and cache reachability. A dead cache only
// degrades the response, it does not fail the check.
func healthHandler(postgres *db.PostgresDB, cache *db.Redis) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbOK := postgres != nil && postgres.Pool != nil && postgres.Pool.Ping(c.Request.Context()) == nil

		status := http.StatusOK
		state := "ok"
		if !dbOK {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}
		c.JSON(status, gin.H{
			"status": state,
			"db":     dbOK,
			"cache":  cache.Healthy(c.Request.Context()),
		})
	}
}
