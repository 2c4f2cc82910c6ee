package server

import (
	"context"
	"net/http"

	"github.com/cactivenetwork/cactive-hypixel-api/pkg/cactive"
)

func (h *handlers) nicknameHistory(w http.ResponseWriter, r *http.Request) {
	nickname := r.URL.Query().Get("nickname")
	if nickname == "" {
		httpError(w, http.StatusBadRequest, "nickname is required")
		return
	}

	h.respond(w, r, "nickname-history", nickname,
		func(ctx context.Context) (result any, err error) {
			return h.client.NicknameHistory(ctx, nickname)
		})
}

func (h *handlers) playerData(w http.ResponseWriter, r *http.Request) {
	uuid := r.URL.Query().Get("uuid")
	if uuid == "" {
		httpError(w, http.StatusBadRequest, "uuid is required")
		return
	}

	h.respond(w, r, "player-data", uuid,
		func(ctx context.Context) (result any, err error) {
			return h.client.PlayerData(ctx, uuid)
		})
}

func (h *handlers) staffTracker(w http.ResponseWriter, r *http.Request) {
	filter, err := cactive.ParseStaffFilter(r.URL.Query().Get("filter"))
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respond(w, r, "staff-tracker", string(filter),
		func(ctx context.Context) (result any, err error) {
			return h.client.StaffTracker(ctx, filter)
		})
}

func (h *handlers) punishment(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpError(w, http.StatusBadRequest, "id is required")
		return
	}

	h.respond(w, r, "punishment-data", id,
		func(ctx context.Context) (result any, err error) {
			return h.client.PunishmentData(ctx, id)
		})
}

func (h *handlers) key(w http.ResponseWriter, r *http.Request) {
	// Key data is never cached since it reflects the live
	// key state the watchdog relies on.
	data, err := h.client.KeyData(r.Context())
	if err != nil {
		h.logger.Warn("key: " + err.Error())
		httpError(w, apiErrorStatus(err), err.Error())
		return
	}
	writeJSON(w, h.logger, data)
}
