package watch

import (
	"context"

	"github.com/cactivenetwork/cactive-hypixel-api/internal/healthchecksio"
	"github.com/cactivenetwork/cactive-hypixel-api/internal/models"
	"github.com/cactivenetwork/cactive-hypixel-api/pkg/cactive"
)

type KeyDataFetcher interface {
	KeyData(ctx context.Context) (data cactive.KeyData, err error)
}

type Database interface {
	StoreKeyCheck(check models.KeyCheck) (err error)
	LastKeyCheck() (check models.KeyCheck, ok bool)
}

type Notifier interface {
	Notify(message string)
}

type HealthchecksIOClient interface {
	Ping(ctx context.Context, state healthchecksio.State) (err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
