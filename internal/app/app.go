// Package app wires configuration, storage, sessions, boards and handlers
// into one application.
package app

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/vibex/internal/cache"
	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/config"
	"github.com/bobmcallan/vibex/internal/handlers"
	"github.com/bobmcallan/vibex/internal/interfaces"
	"github.com/bobmcallan/vibex/internal/listing"
	"github.com/bobmcallan/vibex/internal/seed"
	"github.com/bobmcallan/vibex/internal/session"
	"github.com/bobmcallan/vibex/internal/storage"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Storage   interfaces.StorageManager
	Sessions  *session.Manager
	Requests  *listing.TeamRequestBoard
	Events    *listing.EventBoard
	Responses *cache.ResponseCache

	data seed.Data

	// HTTP handlers
	PageHandler       *handlers.PageHandler
	HealthHandler     *handlers.HealthHandler
	VersionHandler    *handlers.VersionHandler
	AuthHandler       *handlers.AuthHandler
	HackUpHandler     *handlers.HackUpHandler
	VConnectHandler   *handlers.VConnectHandler
	ProfileHandler    *handlers.ProfileHandler
	QuizHandler       *handlers.QuizHandler
	ListingAPIHandler *handlers.ListingAPIHandler
	SessionAPIHandler *handlers.SessionAPIHandler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	// Validate environment setting
	env := strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.IsDevMode() {
		logger.Warn().Msg("RUNNING IN DEV MODE - ephemeral session secret allowed, do not use in production")
	} else if env != "prod" && env != "" {
		logger.Warn().
			Str("environment", cfg.Environment).
			Msg("unrecognized environment value, defaulting to prod behavior")
	}

	store, err := storage.NewStorageManager(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	a.Storage = store

	if err := a.initBoards(); err != nil {
		store.Close()
		return nil, err
	}

	a.Sessions = session.NewManager(store.KeyValueStorage(), session.ManagerConfig{
		Secret:     []byte(cfg.Session.Secret),
		TTL:        cfg.SessionTTL(),
		CookieName: cfg.Session.CookieName,
	}, logger)
	a.Responses = cache.New(cfg.CacheTTL(), cfg.Listing.CacheMaxEntries)

	if err := a.initHandlers(); err != nil {
		store.Close()
		return nil, err
	}

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// initBoards loads the seed data into the listing boards.
func (a *App) initBoards() error {
	data, err := seed.Load(a.Config.Seed.Path, a.Config.Location(), a.Logger)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	a.Requests, err = listing.NewTeamRequestBoard(data.TeamRequests)
	if err != nil {
		return fmt.Errorf("invalid team requests: %w", err)
	}
	a.Events, err = listing.NewEventBoard(data.Events)
	if err != nil {
		return fmt.Errorf("invalid events: %w", err)
	}

	a.data = data
	return nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() error {
	pagesDir := handlers.FindPagesDir()
	templates, err := handlers.LoadTemplates(pagesDir)
	if err != nil {
		return fmt.Errorf("failed to load templates from %s: %w", pagesDir, err)
	}

	dev := a.Config.IsDevMode()
	loc := a.Config.Location()

	a.PageHandler = handlers.NewPageHandler(a.Logger, templates, dev, a.Sessions, pagesDir)
	a.HealthHandler = handlers.NewHealthHandler(a.Logger, a.Sessions, dev)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.AuthHandler = handlers.NewAuthHandler(a.Logger, templates, dev, a.Sessions)
	a.HackUpHandler = handlers.NewHackUpHandler(a.Logger, templates, dev, a.Sessions, a.Requests, a.Responses, loc)
	a.VConnectHandler = handlers.NewVConnectHandler(a.Logger, templates, dev, a.Sessions, a.Events, a.Responses, loc)
	a.ProfileHandler = handlers.NewProfileHandler(a.Logger, templates, dev, a.Sessions)
	a.QuizHandler = handlers.NewQuizHandler(a.Logger, templates, dev, a.Sessions, a.data.Quizzes, a.data.Leaderboard)
	a.ListingAPIHandler = handlers.NewListingAPIHandler(a.Logger, a.Requests, a.Events, a.Responses, loc)
	a.SessionAPIHandler = handlers.NewSessionAPIHandler(a.Logger, a.Sessions)

	a.Logger.Debug().Str("pages", pagesDir).Msg("HTTP handlers initialized")
	return nil
}

// Close closes all application resources.
func (a *App) Close() error {
	if a.Storage != nil {
		return a.Storage.Close()
	}
	return nil
}
