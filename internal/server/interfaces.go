package server

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cactivenetwork/cactive-hypixel-api/internal/models"
	"github.com/cactivenetwork/cactive-hypixel-api/pkg/cactive"
)

type APIClient interface {
	NicknameHistory(ctx context.Context, nickname string) (
		history []cactive.NicknameHistory, err error)
	PlayerData(ctx context.Context, uuid string) (
		data cactive.PlayerData, err error)
	StaffTracker(ctx context.Context, filter cactive.StaffFilter) (
		staff []cactive.StaffMember, err error)
	PunishmentData(ctx context.Context, id string) (
		data cactive.PunishmentData, err error)
	KeyData(ctx context.Context) (data cactive.KeyData, err error)
}

type Cache interface {
	GetResponse(endpoint, query string, maxAge time.Duration,
		now time.Time) (response json.RawMessage, ok bool)
	StoreResponse(endpoint, query string, response json.RawMessage,
		now time.Time) (err error)
	LastKeyCheck() (check models.KeyCheck, ok bool)
}

type ForceChecker interface {
	ForceCheck(ctx context.Context) (err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
