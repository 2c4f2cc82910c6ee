package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/cactivenetwork/cactive-hypixel-api/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type handlers struct {
	// Objects
	client       APIClient
	cache        Cache
	forceChecker ForceChecker
	buildInfo    models.BuildInformation
	logger       Logger
	// Settings
	cacheMaxAge time.Duration
	// Mockable functions
	timeNow func() time.Time
}

func newHandler(settings Settings) http.Handler {
	handlers := &handlers{
		client:       settings.Client,
		cache:        settings.Cache,
		forceChecker: settings.ForceChecker,
		buildInfo:    settings.BuildInfo,
		logger:       settings.Logger,
		cacheMaxAge:  settings.CacheMaxAge,
		timeNow:      time.Now,
	}

	router := chi.NewRouter()
	router.Use(middleware.CleanPath)

	rootURL := strings.TrimSuffix(settings.RootURL, "/")
	router.Route(rootURL+"/api/v1", func(router chi.Router) {
		router.Get("/nickname-history", handlers.nicknameHistory)
		router.Get("/player-data", handlers.playerData)
		router.Get("/staff-tracker", handlers.staffTracker)
		router.Get("/punishment", handlers.punishment)
		router.Get("/key", handlers.key)
		router.Get("/status", handlers.status)
		router.Post("/check", handlers.check)
	})

	return router
}
