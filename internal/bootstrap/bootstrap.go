package bootstrap

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/tmercan/fightnight/internal/app/controllers"
	appRepos "github.com/tmercan/fightnight/internal/app/repositories"
	appRoutes "github.com/tmercan/fightnight/internal/app/routes"
	appServices "github.com/tmercan/fightnight/internal/app/services"
	"github.com/tmercan/fightnight/internal/config"
	appMiddleware "github.com/tmercan/fightnight/internal/middleware"
	"github.com/tmercan/fightnight/internal/pkg/helpers"
	"github.com/tmercan/fightnight/internal/pkg/logger"
	"github.com/tmercan/fightnight/internal/session"
	"github.com/tmercan/fightnight/internal/store"
	"github.com/tmercan/fightnight/internal/sync"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store             *store.Client
	AuthClient        *store.AuthClient
	SessionProvider   *session.Provider
	Syncer            *sync.Syncer
	Repos             *appRepos.Repositories
	Services          *appServices.Services
	AuthController    *appControllers.AuthController
	EventController   *appControllers.EventController
	ProfileController *appControllers.ProfileController
	RSVPController    *appControllers.RSVPController
	ChatController    *appControllers.ChatController
	SessionMiddleware *appMiddleware.SessionMiddleware
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies wires the store client, session provider, synchronizer,
// repositories, services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Store = store.NewClient(cfg, lgr)
	deps.AuthClient = store.NewAuthClient(deps.Store)
	deps.SessionProvider = session.NewProvider(deps.AuthClient)
	deps.Syncer = sync.NewSyncer(helpers.ParseDuration(cfg.Sync.BindingIdleTTL, 10*time.Minute), lgr)

	deps.Repos = appRepos.NewRepositories(deps.Store)
	deps.Services = appServices.NewServices(deps.Repos, deps.Syncer, cfg, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.SessionProvider)
	deps.EventController = appControllers.NewEventController(deps.Services.EventService, deps.SessionProvider)
	deps.ProfileController = appControllers.NewProfileController(deps.Services.FighterService, deps.SessionProvider)
	deps.RSVPController = appControllers.NewRSVPController(deps.Services.RSVPService, deps.Services.WaiverService, deps.SessionProvider)
	deps.ChatController = appControllers.NewChatController(deps.Services.ChatService, deps.SessionProvider)
	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.SessionProvider)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.EventController,
		deps.ProfileController,
		deps.RSVPController,
		deps.ChatController,
		deps.SessionMiddleware,
	)

	return router
}
