package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/repository/memstore"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

// repos bundles one implementation per entity so route wiring does not
// care which backend is active.
type repos struct {
	projects   repository.ProjectRepositoryInterface
	tasks      repository.TaskRepositoryInterface
	members    repository.MemberRepositoryInterface
	teams      repository.TeamRepositoryInterface
	milestones repository.MilestoneRepositoryInterface
	events     repository.EventRepositoryInterface
	stats      repository.StatsRepositoryInterface
	users      repository.UserRepositoryInterface
	apiKeys    repository.APIKeyRepositoryInterface
}

func Init(cfg *config.Config) (*Server, error) {
	var (
		db  *gorm.DB
		err error
		rs  repos
	)

	switch cfg.StorageDriver {
	case "memory":
		store := memstore.New()
		rs = repos{
			projects:   store.Projects(),
			tasks:      store.Tasks(),
			members:    store.Members(),
			teams:      store.Teams(),
			milestones: store.Milestones(),
			events:     store.Events(),
			stats:      store.Stats(),
			users:      store.Users(),
			apiKeys:    store.APIKeys(),
		}
		log.Println("✅ Using in-memory storage")
	default:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
		}
		if err := db.AutoMigrate(
			&model.Project{},
			&model.Task{},
			&model.TeamMember{},
			&model.Team{},
			&model.Milestone{},
			&model.Event{},
			&model.User{},
			&model.APIKey{},
		); err != nil {
			return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
		}
		log.Println("✅ Connected to database")

		rs = repos{
			projects:   repository.NewProjectRepository(db),
			tasks:      repository.NewTaskRepository(db),
			members:    repository.NewMemberRepository(db),
			teams:      repository.NewTeamRepository(db),
			milestones: repository.NewMilestoneRepository(db),
			events:     repository.NewEventRepository(db),
			stats:      repository.NewStatsRepository(db),
			users:      repository.NewUserRepository(db),
			apiKeys:    repository.NewAPIKeyRepository(db),
		}
	}

	r := gin.Default()

	tokenTTL := time.Duration(cfg.JWTExpiryHours) * time.Hour

	userHandler := handler.NewUserHandler(rs.users, cfg.JWTSecret, tokenTTL)
	projectHandler := handler.NewProjectHandler(rs.projects)
	taskHandler := handler.NewTaskHandler(rs.tasks)
	memberHandler := handler.NewMemberHandler(rs.members)
	teamHandler := handler.NewTeamHandler(rs.teams)
	milestoneHandler := handler.NewMilestoneHandler(rs.milestones)
	eventHandler := handler.NewEventHandler(rs.events)
	statsHandler := handler.NewStatsHandler(rs.stats)
	apiKeyHandler := handler.NewAPIKeyHandler(rs.apiKeys)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/validate-key", apiKeyHandler.Validate)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require a JWT or an API key
	api := r.Group("/api")
	api.Use(middleware.Auth(cfg.JWTSecret, rs.apiKeys))
	{
		// Project routes
		api.GET("/projects", projectHandler.List)
		api.POST("/projects", projectHandler.Create)
		api.GET("/projects/:id", projectHandler.GetByID)
		api.PUT("/projects/:id", projectHandler.Update)
		api.PATCH("/projects/:id", projectHandler.Update)
		api.DELETE("/projects/:id", projectHandler.Delete)

		// Task routes
		api.GET("/tasks", taskHandler.List)
		api.POST("/tasks", taskHandler.Create)
		api.GET("/tasks/:id", taskHandler.GetByID)
		api.PUT("/tasks/:id", taskHandler.Update)
		api.PATCH("/tasks/:id", taskHandler.Update)
		api.DELETE("/tasks/:id", taskHandler.Delete)
		api.POST("/tasks/:id/move", taskHandler.Move)

		// Team member routes
		api.GET("/team", memberHandler.List)
		api.POST("/team", memberHandler.Create)
		api.GET("/team/:id", memberHandler.GetByID)
		api.PUT("/team/:id", memberHandler.Update)
		api.PATCH("/team/:id", memberHandler.Update)
		api.DELETE("/team/:id", memberHandler.Delete)

		// Team routes
		api.GET("/teams", teamHandler.List)
		api.POST("/teams", teamHandler.Create)
		api.GET("/teams/:id", teamHandler.GetByID)
		api.PATCH("/teams/:id", teamHandler.Update)
		api.DELETE("/teams/:id", teamHandler.Delete)

		// Milestone routes
		api.GET("/milestones", milestoneHandler.List)
		api.POST("/milestones", milestoneHandler.Create)
		api.GET("/milestones/:id", milestoneHandler.GetByID)
		api.PATCH("/milestones/:id", milestoneHandler.Update)
		api.DELETE("/milestones/:id", milestoneHandler.Delete)

		// Event routes
		api.GET("/events", eventHandler.List)
		api.POST("/events", eventHandler.Create)
		api.GET("/events/:id", eventHandler.GetByID)
		api.PATCH("/events/:id", eventHandler.Update)
		api.DELETE("/events/:id", eventHandler.Delete)

		// Dashboard stats
		api.GET("/stats", statsHandler.Get)

		// API key routes
		api.GET("/keys", apiKeyHandler.List)
		api.POST("/keys", apiKeyHandler.Create)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
