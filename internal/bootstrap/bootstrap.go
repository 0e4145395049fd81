package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Tndevfactory/labtim/internal/app/controllers"
	"github.com/Tndevfactory/labtim/internal/app/migrations"
	"github.com/Tndevfactory/labtim/internal/app/repositories"
	"github.com/Tndevfactory/labtim/internal/app/routes"
	"github.com/Tndevfactory/labtim/internal/app/services"
	"github.com/Tndevfactory/labtim/internal/config"
	"github.com/Tndevfactory/labtim/internal/db"
	"github.com/Tndevfactory/labtim/internal/middleware"
	"github.com/Tndevfactory/labtim/internal/pkg/auth"
	"github.com/Tndevfactory/labtim/internal/pkg/email"
	"github.com/Tndevfactory/labtim/internal/pkg/filestorage"
	"github.com/Tndevfactory/labtim/internal/pkg/helpers"
	"github.com/Tndevfactory/labtim/internal/pkg/logger"
	"github.com/Tndevfactory/labtim/internal/seed"
)

// Dependencies holds everything the HTTP layer needs, built once at startup.
type Dependencies struct {
	Config      *config.Config
	JWTService  *auth.JWTService
	Storage     *filestorage.LocalStorage
	Controllers routes.Controllers
}

// LoadConfigAndSetupLogger loads .env, the config file, and configures the
// global logger accordingly.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on the environment")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "pretty" || cfg.Server.Mode == "development",
	})

	return cfg, nil
}

// SetupDatabase opens the pool, applies pending migrations, and seeds the
// baseline rows.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, *repositories.Repositories, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory("migrations"); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := repositories.NewRepositories(database.Pool)

	if err := seed.Run(context.Background(), repos); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to seed database: %w", err)
	}

	// housekeeping: stale refresh tokens accumulate across restarts
	if removed, err := repos.Tokens.DeleteExpired(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("Failed to purge expired refresh tokens")
	} else if removed > 0 {
		logger.Info().Int64("removed", removed).Msg("Purged expired refresh tokens")
	}

	return database, repos, nil
}

// BuildDependencies wires services and controllers on top of the repositories.
func BuildDependencies(cfg *config.Config, repos *repositories.Repositories) (*Dependencies, error) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 0),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 0),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		return nil, err
	}

	emailService := email.NewService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		BaseURL:   cfg.Server.BaseURL,
		DevMode:   cfg.Server.Mode != "production",
	}, logger.Logger())

	authService := services.NewAuthService(repos.Users, repos.Tokens, jwtService)
	userService := services.NewUserService(repos.Users, repos.Tokens, emailService, storage)
	publicationService := services.NewPublicationService(repos.Publications)
	theseService := services.NewTheseService(repos.Theses)
	masterService := services.NewMasterService(repos.Masters)
	actuService := services.NewActuService(repos.Actus, storage)
	presentationService := services.NewPresentationService(repos.Presentations, storage)

	return &Dependencies{
		Config:     cfg,
		JWTService: jwtService,
		Storage:    storage,
		Controllers: routes.Controllers{
			Auth:         controllers.NewAuthController(authService),
			User:         controllers.NewUserController(userService),
			Publication:  controllers.NewPublicationController(publicationService),
			These:        controllers.NewTheseController(theseService),
			Master:       controllers.NewMasterController(masterService),
			Actu:         controllers.NewActuController(actuService),
			Presentation: controllers.NewPresentationController(presentationService),
		},
	}, nil
}

// SetupRouter builds the gin engine with middleware, static uploads, and
// the API routes.
func SetupRouter(deps *Dependencies) *gin.Engine {
	if deps.Config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	router.Static("/uploads", deps.Storage.BasePath())

	routes.SetupRoutes(router, deps.Controllers, deps.JWTService)

	return router
}
