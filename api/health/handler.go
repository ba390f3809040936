// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// APIReply is the response for Health
type APIReply struct {
	Checks  map[string]Result `json:"checks"`
	Healthy bool              `json:"healthy"`
}

// NewGetHandler returns a handler that responds to GET requests with the
// latest results of [h]. Unhealthy nodes respond with 503.
func NewGetHandler(h *Health) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		checks, healthy := h.Results()
		w.Header().Set("Content-Type", "application/json")
		if !healthy {
			// If a health check has failed, we should return a 503.
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		err := json.NewEncoder(w).Encode(APIReply{
			Checks:  checks,
			Healthy: healthy,
		})
		if err != nil {
			h.log.Debug("failed to encode the health check response",
				zap.Error(err),
			)
		}
	})
}
