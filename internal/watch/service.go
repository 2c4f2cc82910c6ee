// Package watch implements the key watchdog service checking
// the API key state periodically.
package watch

import (
	"context"
	"time"

	"github.com/cactivenetwork/cactive-hypixel-api/internal/healthchecksio"
	"github.com/cactivenetwork/cactive-hypixel-api/internal/models"
)

type Service struct {
	// Injected fields
	period        time.Duration
	expiryWarning time.Duration
	client        KeyDataFetcher
	db            Database
	notifier      Notifier
	hioClient     HealthchecksIOClient
	logger        Logger
	timeNow       func() time.Time

	// Internal fields
	force       chan struct{}
	forceResult chan error
	stopCh      chan<- struct{}
	done        <-chan struct{}
}

func NewService(client KeyDataFetcher, db Database, notifier Notifier,
	hioClient HealthchecksIOClient, period, expiryWarning time.Duration,
	logger Logger, timeNow func() time.Time) *Service {
	return &Service{
		period:        period,
		expiryWarning: expiryWarning,
		client:        client,
		db:            db,
		notifier:      notifier,
		hioClient:     hioClient,
		logger:        logger,
		timeNow:       timeNow,
		force:         make(chan struct{}),
		forceResult:   make(chan error),
	}
}

func (s *Service) String() string {
	return "key watchdog"
}

func (s *Service) Start(ctx context.Context) (runError <-chan error, startErr error) {
	ready := make(chan struct{})
	runErrorCh := make(chan error)
	stopCh := make(chan struct{})
	s.stopCh = stopCh
	done := make(chan struct{})
	s.done = done
	go s.run(ctx, ready, stopCh, done)
	select {
	case <-ready:
	case <-ctx.Done():
		return nil, s.Stop()
	}
	return runErrorCh, nil
}

func (s *Service) run(ctx context.Context, ready chan<- struct{},
	stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	s.logger.Info("checking key each " + s.period.String())
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()
	close(ready)

	for {
		select {
		case <-ticker.C:
			err := s.checkKey(ctx)
			if err != nil {
				s.logger.Error(err.Error())
			}
		case <-s.force:
			s.forceResult <- s.checkKey(ctx)
		case <-stopCh:
			return
		}
	}
}

func (s *Service) Stop() (err error) {
	close(s.stopCh)
	<-s.done
	return nil
}

// ForceCheck runs a key check immediately and returns its error.
func (s *Service) ForceCheck(ctx context.Context) (err error) {
	s.force <- struct{}{}

	select {
	case err = <-s.forceResult:
	case <-ctx.Done():
		err = ctx.Err()
	}
	return err
}

func (s *Service) checkKey(ctx context.Context) (err error) {
	previous, hasPrevious := s.db.LastKeyCheck()

	check := models.KeyCheck{
		Time: s.timeNow(),
	}

	keyData, err := s.client.KeyData(ctx)
	if err != nil {
		check.Message = err.Error()
		s.notifyFailure(previous, hasPrevious, err)
		s.pingHealthchecksio(ctx, healthchecksio.Fail)
		storeErr := s.db.StoreKeyCheck(check)
		if storeErr != nil {
			s.logger.Error("storing key check: " + storeErr.Error())
		}
		return err
	}

	check.Success = true
	check.KeyData = keyData
	s.logCheck(check)
	s.notifyTransitions(previous, hasPrevious, check)
	s.pingHealthchecksio(ctx, healthchecksio.Ok)

	err = s.db.StoreKeyCheck(check)
	if err != nil {
		s.logger.Error("storing key check: " + err.Error())
	}
	return nil
}

func (s *Service) logCheck(check models.KeyCheck) {
	switch {
	case !check.KeyData.Valid:
		s.logger.Warn("key is not valid")
	case !check.KeyData.Active:
		s.logger.Warn("key is valid but not active")
	default:
		downIDs := check.DownEndpoints()
		if len(downIDs) > 0 {
			s.logger.Warn("key is active; endpoints down: " +
				joinIDs(downIDs))
			return
		}
		s.logger.Debug("key is active and all endpoints are up")
	}
}

func (s *Service) pingHealthchecksio(ctx context.Context,
	state healthchecksio.State) {
	err := s.hioClient.Ping(ctx, state)
	if err != nil {
		s.logger.Error("pinging healthchecks.io failed: " + err.Error())
	}
}
