package controllers

import (
	"context"
	"net/http"
	"time"

	"skillswap_server/utils"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Welcome to SkillSwap"})
}

// HealthHandler reports whether match storage is reachable
func HealthHandler(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			utils.WriteJSONResponse(w, http.StatusServiceUnavailable, map[string]interface{}{
				"ok":          false,
				"dbConnected": false,
				"error":       err.Error(),
			})
			return
		}
		utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"ok": true, "dbConnected": true})
	}
}
