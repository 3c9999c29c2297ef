package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hr-backend/internal/applicants"
	"hr-backend/internal/employees"
	"hr-backend/internal/jobs"
	"hr-backend/internal/notifications"
	"hr-backend/internal/notify"
	"hr-backend/internal/resumes"
	"hr-backend/internal/shared/config"
	"hr-backend/internal/shared/server/middleware"
	"hr-backend/internal/shared/server/respond"
	"hr-backend/internal/shared/storage/db"
	"hr-backend/internal/shared/storage/object"
	localstore "hr-backend/internal/shared/storage/object/local"
	s3store "hr-backend/internal/shared/storage/object/s3"
	"hr-backend/internal/users"
)

// App holds shared dependencies with routes wired onto Router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Hub    *notify.Hub

	JobsRepo          jobs.Repo
	ApplicantsRepo    applicants.Repo
	EmployeesRepo     employees.Repo
	NotificationsRepo notifications.Repo
	UsersRepo         users.Repo

	JobsService          *jobs.Service
	ApplicantsService    *applicants.Service
	EmployeesService     *employees.Service
	NotificationsService *notifications.Service
	UsersService         *users.Service
}

// Build prepares shared dependencies and wires the router. An empty
// DATABASE_URL, or one that cannot be reached, falls back to in-memory
// repositories.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB := buildDB(ctx, cfg)
	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	hub := notify.NewHub()

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Hub:    hub,
	}

	if sqlDB != nil {
		app.JobsRepo = &jobs.PGRepo{DB: sqlDB}
		app.ApplicantsRepo = &applicants.PGRepo{DB: sqlDB}
		app.EmployeesRepo = &employees.PGRepo{DB: sqlDB}
		app.NotificationsRepo = &notifications.PGRepo{DB: sqlDB}
		app.UsersRepo = &users.PGRepo{DB: sqlDB}
	} else {
		app.JobsRepo = jobs.NewMemoryRepo()
		app.ApplicantsRepo = applicants.NewMemoryRepo()
		app.EmployeesRepo = employees.NewMemoryRepo()
		app.NotificationsRepo = notifications.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}

	app.JobsService = &jobs.Service{Repo: app.JobsRepo}
	app.ApplicantsService = &applicants.Service{
		Repo:        app.ApplicantsRepo,
		Intake:      resumes.NewIntake(store),
		Broadcaster: hub,
		BaseURL:     cfg.BaseURL,
	}
	app.EmployeesService = &employees.Service{Repo: app.EmployeesRepo, Broadcaster: hub}
	app.NotificationsService = &notifications.Service{Repo: app.NotificationsRepo, Broadcaster: hub}
	app.UsersService = &users.Service{Repo: app.UsersRepo}

	app.Router = newRouter(cfg, app)
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(ctx, conn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		conn.Close()
		return nil
	}
	return conn
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, fmt.Errorf("build s3 store: %w", err)
		}
		return store, nil
	}
	return localstore.New(cfg.UploadsDir), nil
}

func newRouter(cfg config.Config, app *App) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		cors.Default(),
	)
	r.MaxMultipartMemory = 16 << 20

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is up and running")
	})
	if cfg.ObjectStoreType == "local" {
		r.Static("/uploads", cfg.UploadsDir)
	}

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})

	recruitments := api.Group("/recruitments")
	jobs.NewHandler(app.JobsService).RegisterRoutes(recruitments)
	applicants.NewHandler(app.ApplicantsService).RegisterRoutes(recruitments)

	employees.NewHandler(app.EmployeesService).RegisterRoutes(api.Group("/employees"))
	notifications.NewHandler(app.NotificationsService, app.Hub).RegisterRoutes(api.Group("/notifications"))
	users.NewHandler(app.UsersService).RegisterRoutes(api.Group("/auth"))

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
