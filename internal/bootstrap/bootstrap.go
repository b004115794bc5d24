package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	appauth "github.com/campushub/backend/internal/app/auth"
	"github.com/campushub/backend/internal/app/controllers"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/app/routes"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/config"
	"github.com/campushub/backend/internal/db"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/logger"
	"github.com/campushub/backend/internal/seed"
)

// Application holds the assembled application and its shared resources.
type Application struct {
	Config   *config.Config
	Engine   *gin.Engine
	Postgres *db.PostgresDB
	Redis    *db.Redis
}

// NewApplication wires configuration, storage, services, controllers and
// routes into a runnable application.
func NewApplication(cfg *config.Config) (*Application, error) {
	configureLogging(cfg)
	configureGinMode(cfg)

	postgres, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := postgres.RunMigrations(ctx); err != nil {
		postgres.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redis := db.NewRedis(cfg.Redis.Addr)
	if !redis.Healthy(ctx) {
		logger.Warn().Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, stats caching disabled")
	}

	tokenExpiry, err := time.ParseDuration(cfg.JWT.TokenExpiry)
	if err != nil {
		postgres.Close()
		return nil, fmt.Errorf("invalid token expiry: %w", err)
	}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: tokenExpiry,
		TokenIssuer: cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(postgres.Pool)

	if err := seed.EnsureAdmin(ctx, repos.UserRepository, cfg); err != nil {
		postgres.Close()
		return nil, err
	}

	authz := appauth.NewAuthorizationService(repos.CourseRepository)
	log := logger.WithField("component", "service")

	statsTTL, _ := time.ParseDuration(cfg.Redis.StatsTTL)

	authService := services.NewAuthService(repos.UserRepository, jwtService, log)
	courseService := services.NewCourseService(repos.CourseRepository, repos.UserRepository, authz, log)
	assignmentService := services.NewAssignmentService(repos.AssignmentRepository, repos.CourseRepository, authz, log)
	materialService := services.NewMaterialService(repos.MaterialRepository, repos.CourseRepository, authz, log)
	attendanceService := services.NewAttendanceService(repos.AttendanceRepository, repos.CourseRepository, authz, log)
	placementService := services.NewPlacementService(repos.PlacementRepository, repos.ApplicationRepository, postgres, log)
	applicationService := services.NewApplicationService(repos.ApplicationRepository, repos.PlacementRepository, repos.UserRepository, log)
	noticeService := services.NewNoticeService(repos.NoticeRepository, log)
	statsService := services.NewStatsService(repos.UserRepository, repos.PlacementRepository, repos.ApplicationRepository, redis, statsTTL, log)
	userService := services.NewUserService(repos.UserRepository, repos.CourseRepository, repos.ApplicationRepository, authService, postgres, log)

	engine := gin.New()
	engine.Use(gin.Recovery())

	routes.Register(engine, &routes.Dependencies{
		JWTService:  jwtService,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst),

		AuthController:        controllers.NewAuthController(authService),
		CourseController:      controllers.NewCourseController(courseService),
		AssignmentController:  controllers.NewAssignmentController(assignmentService),
		MaterialController:    controllers.NewMaterialController(materialService),
		AttendanceController:  controllers.NewAttendanceController(attendanceService),
		PlacementController:   controllers.NewPlacementController(placementService, applicationService),
		ApplicationController: controllers.NewApplicationController(applicationService),
		NoticeController:      controllers.NewNoticeController(noticeService),
		AdminController:       controllers.NewAdminController(userService, statsService),

		Postgres: postgres,
		Redis:    redis,
	})

	return &Application{
		Config:   cfg,
		Engine:   engine,
		Postgres: postgres,
		Redis:    redis,
	}, nil
}

// Close releases shared resources.
func (a *Application) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.Postgres != nil {
		a.Postgres.Close()
	}
}

func configureLogging(cfg *config.Config) {
	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "console",
	})
}

func configureGinMode(cfg *config.Config) {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}
