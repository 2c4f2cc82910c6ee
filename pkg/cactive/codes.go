package cactive

// Error code strings returned in the type field of API errors.
// These are documented in the README of this repository and
// the readme package tests keep both in sync.
const (
	TypeFailedAPIRequest   = "failed-api-request"
	TypeInvalidAPIKey      = "invalid-api-key"
	TypeInactiveAPIKey     = "inactive-api-key"
	TypeRateLimitReached   = "rate-limit-reached"
	TypeInvalidNickname    = "invalid-nickname"
	TypeInvalidUUID        = "invalid-uuid"
	TypeInvalidFilter      = "invalid-filter"
	TypePlayerNotFound     = "player-not-found"
	TypePunishmentNotFound = "punishment-not-found"
	TypeEndpointDisabled   = "endpoint-disabled"
	TypeInternalError      = "internal-error"
)

//nolint:gochecknoglobals
var typeToSentinel = map[string]error{
	TypeFailedAPIRequest:   ErrRequestFailed,
	TypeInvalidAPIKey:      ErrKeyNotValid,
	TypeInactiveAPIKey:     ErrKeyInactive,
	TypeRateLimitReached:   ErrRateLimitReached,
	TypeInvalidNickname:    ErrNicknameNotValid,
	TypeInvalidUUID:        ErrUUIDNotValid,
	TypeInvalidFilter:      ErrFilterNotValid,
	TypePlayerNotFound:     ErrPlayerNotFound,
	TypePunishmentNotFound: ErrPunishmentNotFound,
	TypeEndpointDisabled:   ErrEndpointDisabled,
	TypeInternalError:      ErrAPIInternal,
}

// ErrorTypes returns all the error code strings the client
// knows how to map to sentinel errors.
func ErrorTypes() (types []string) {
	return []string{
		TypeFailedAPIRequest,
		TypeInvalidAPIKey,
		TypeInactiveAPIKey,
		TypeRateLimitReached,
		TypeInvalidNickname,
		TypeInvalidUUID,
		TypeInvalidFilter,
		TypePlayerNotFound,
		TypePunishmentNotFound,
		TypeEndpointDisabled,
		TypeInternalError,
	}
}
