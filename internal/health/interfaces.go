package health

import (
	"context"
	"net"

	"github.com/cactivenetwork/cactive-hypixel-api/internal/models"
)

type KeyCheckGetter interface {
	LastKeyCheck() (check models.KeyCheck, ok bool)
}

type LookupIPer interface {
	LookupIP(ctx context.Context, network, host string) (ips []net.IP, err error)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
