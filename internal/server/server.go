// Package server implements the HTTP server exposing the
// CactiveNetwork Hypixel API wrapper, with cached responses.
package server

import (
	"time"

	"github.com/cactivenetwork/cactive-hypixel-api/internal/models"
	"github.com/qdm12/goservices/httpserver"
)

type Settings struct {
	Address      string
	RootURL      string
	CacheMaxAge  time.Duration
	Client       APIClient
	Cache        Cache
	ForceChecker ForceChecker
	BuildInfo    models.BuildInformation
	Logger       Logger
}

func New(settings Settings) (server *httpserver.Server, err error) {
	handler := newHandler(settings)
	name := "server"
	return httpserver.New(httpserver.Settings{
		Handler: handler,
		Name:    &name,
		Address: &settings.Address,
		Logger:  settings.Logger,
	})
}
