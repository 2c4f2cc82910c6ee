package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/cactivenetwork/cactive-hypixel-api/internal/backup"
	cachejson "github.com/cactivenetwork/cactive-hypixel-api/internal/cache/json"
	"github.com/cactivenetwork/cactive-hypixel-api/internal/config"
	"github.com/cactivenetwork/cactive-hypixel-api/internal/health"
	"github.com/cactivenetwork/cactive-hypixel-api/internal/healthchecksio"
	"github.com/cactivenetwork/cactive-hypixel-api/internal/models"
	"github.com/cactivenetwork/cactive-hypixel-api/internal/noop"
	"github.com/cactivenetwork/cactive-hypixel-api/internal/resolver"
	"github.com/cactivenetwork/cactive-hypixel-api/internal/server"
	"github.com/cactivenetwork/cactive-hypixel-api/internal/shoutrrr"
	"github.com/cactivenetwork/cactive-hypixel-api/internal/watch"
	"github.com/cactivenetwork/cactive-hypixel-api/pkg/cactive"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo, time.Now)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation, timeNow func() time.Time) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		case "healthcheck":
			// Running the program in a separate instance through the Docker
			// built-in healthcheck, in an ephemeral fashion to query the
			// long running instance of the program about its status

			var healthSettings config.Health
			healthSettings.Read(reader)
			healthSettings.SetDefaults()
			err = healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(ctx, *healthSettings.ServerAddress)
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	cacheDB, err := cachejson.NewDatabase(*config.Paths.DataDir)
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return err
	}

	httpClient := &http.Client{Timeout: config.Client.Timeout}
	defer httpClient.CloseIdleConnections()

	err = health.CheckHTTP(ctx, httpClient, config.API.URL)
	if err != nil {
		logger.Warn(err.Error())
	}

	var debugLogger cactive.DebugLogger
	if config.Logger.Level == log.LevelDebug.String() {
		debugLogger = logger.New(log.SetComponent("api client"))
	}
	apiClient, err := cactive.New(cactive.Settings{
		HTTPClient:    httpClient,
		BaseURL:       config.API.URL,
		Key:           config.API.Key,
		Cache:         config.API.Cache,
		RatePerMinute: config.API.RatePerMinute,
		RateBurst:     config.API.RateBurst,
		DebugLogger:   debugLogger,
	})
	if err != nil {
		return fmt.Errorf("creating API client: %w", err)
	}

	resolverSettings := resolver.Settings{
		Address: config.Resolver.Address,
		Timeout: config.Resolver.Timeout,
	}
	resolver, err := resolver.New(resolverSettings)
	if err != nil {
		return fmt.Errorf("creating resolver: %w", err)
	}

	err = resolver.CheckServer(ctx, apiHost(config.API.URL))
	if err != nil {
		logger.Warn("DNS server check failed: " + err.Error())
	}

	hioClient := healthchecksio.New(httpClient, config.Health.HealthchecksioBaseURL,
		*config.Health.HealthchecksioUUID)

	watchLogger := logger.New(log.SetComponent("watch"))
	watchService := watch.NewService(apiClient, cacheDB, shoutrrrClient,
		hioClient, config.Watch.Period, config.Watch.ExpiryWarning,
		watchLogger, timeNow)

	healthServer, err := createHealthServer(cacheDB, resolver, logger,
		*config.Health.ServerAddress, config.API.URL)
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	mainServer, err := createServer(config.Server, logger, apiClient,
		cacheDB, watchService, buildInfo)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	var backupService goservices.Service
	backupLogger := logger.New(log.SetComponent("backup"))
	backupService = backup.New(*config.Backup.Period, *config.Paths.DataDir,
		config.Backup.Directory, backupLogger)
	backupService, err = goservices.NewRestarter(goservices.RestarterSettings{Service: backupService})
	if err != nil {
		return fmt.Errorf("creating backup restarter: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{cacheDB, watchService, healthServer, mainServer, backupService},
		ServicesStop:  []goservices.Service{mainServer, healthServer, watchService, backupService, cacheDB},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		return fmt.Errorf("starting services: %w", startErr)
	}

	go func() {
		err := watchService.ForceCheck(ctx)
		if err != nil {
			watchLogger.Error("initial key check: " + err.Error())
		}
	}()

	shoutrrrClient.Notify("Launched, watching key every " +
		config.Watch.Period.String())

	select {
	case <-ctx.Done():
	case err = <-runError:
		exitHealthchecksio(hioClient, logger, healthchecksio.Exit1)
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		exitHealthchecksio(hioClient, logger, healthchecksio.Exit1)
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("stopping failed: %w", err)
	}

	exitHealthchecksio(hioClient, logger, healthchecksio.Exit0)
	return nil
}

func apiHost(apiURL string) (host string) {
	parsed, err := url.Parse(apiURL)
	if err != nil || parsed.Hostname() == "" {
		return "hypixel.cactive.network"
	}
	return parsed.Hostname()
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "CactiveNetwork",
		Repository: "cactive-hypixel-api",
		Emails:     []string{"contact@cactive.network"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

func exitHealthchecksio(hioClient *healthchecksio.Client,
	logger log.LoggerInterface, state healthchecksio.State) {
	const timeout = 3 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := hioClient.Ping(ctx, state)
	if err != nil {
		logger.Error(err.Error())
	}
}

//nolint:ireturn
func createHealthServer(db health.KeyCheckGetter, resolver health.LookupIPer,
	logger log.LoggerInterface, serverAddress, apiURL string) (
	healthServer goservices.Service, err error) {
	if !health.IsDocker() {
		return noop.New("healthcheck server"), nil
	}
	isHealthy := health.MakeIsHealthy(db, resolver, apiURL)
	healthLogger := logger.New(log.SetComponent("healthcheck server"))
	return health.NewServer(serverAddress, healthLogger, isHealthy)
}

//nolint:ireturn
func createServer(config config.Server, logger log.LoggerInterface,
	apiClient server.APIClient, cacheDB server.Cache,
	watchService server.ForceChecker, buildInfo models.BuildInformation) (
	service goservices.Service, err error) {
	if !*config.Enabled {
		return noop.New("server"), nil
	}
	serverLogger := logger.New(log.SetComponent("http server"))
	return server.New(server.Settings{
		Address:      config.ListeningAddress,
		RootURL:      config.RootURL,
		CacheMaxAge:  *config.CacheMaxAge,
		Client:       apiClient,
		Cache:        cacheDB,
		ForceChecker: watchService,
		BuildInfo:    buildInfo,
		Logger:       serverLogger,
	})
}
