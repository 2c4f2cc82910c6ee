package server

import (
	"context"
	"encoding/json"
	"net/http"
)

// respond serves the cached response for the endpoint and query
// given if a recent enough one exists, and otherwise fetches a
// fresh one from the API, caches it and serves it.
func (h *handlers) respond(w http.ResponseWriter, r *http.Request,
	endpoint, query string,
	fetch func(ctx context.Context) (result any, err error)) {
	now := h.timeNow()

	if h.cacheMaxAge > 0 {
		cached, ok := h.cache.GetResponse(endpoint, query, h.cacheMaxAge, now)
		if ok {
			h.logger.Debug("serving cached response for " +
				endpoint + " query " + query)
			writeRawJSON(w, cached)
			return
		}
	}

	result, err := fetch(r.Context())
	if err != nil {
		h.logger.Warn(endpoint + ": " + err.Error())
		httpError(w, apiErrorStatus(err), err.Error())
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		httpError(w, http.StatusInternalServerError,
			"encoding response: "+err.Error())
		return
	}

	if h.cacheMaxAge > 0 {
		err = h.cache.StoreResponse(endpoint, query, data, now)
		if err != nil {
			h.logger.Error("caching response: " + err.Error())
		}
	}

	writeRawJSON(w, data)
}

func writeRawJSON(w http.ResponseWriter, data json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(data)
}
