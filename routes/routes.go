package routes

import (
	"skillswap_server/controllers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the service-level routes
func RegisterRoutes(r *mux.Router, store controllers.Pinger) {
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthHandler(store)).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
