package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterMatchRoutes sets up the match lifecycle routes under /api/matches
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService, auth *middleware.AuthMiddleware, logger *zap.Logger) {
	controller := controllers.NewMatchController(matchService, logger)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.Use(auth.RequireAuth)

	matchRouter.HandleFunc("", controller.GetMatches).Methods("GET")
	matchRouter.HandleFunc("/stats", controller.GetStats).Methods("GET")
	matchRouter.HandleFunc("/pending", controller.ProposeMatch).Methods("POST")
	matchRouter.HandleFunc("/{matchId}", controller.GetMatch).Methods("GET")
	matchRouter.HandleFunc("/{matchId}/accept", controller.AcceptMatch).Methods("POST")
	matchRouter.HandleFunc("/{matchId}/decline", controller.DeclineMatch).Methods("POST")
	matchRouter.HandleFunc("/{matchId}/schedule", controller.ScheduleSession).Methods("POST")
	matchRouter.HandleFunc("/{matchId}/review", controller.SubmitReview).Methods("POST")
}
