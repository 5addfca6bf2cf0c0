package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"
	"skillswap_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterS3Routes sets up avatar upload routes
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service, auth *middleware.AuthMiddleware, logger *zap.Logger) {
	controller := controllers.NewS3Controller(s3Service, logger)

	uploadRouter := r.PathPrefix("/api/uploads").Subrouter()
	uploadRouter.Use(auth.RequireAuth)
	uploadRouter.HandleFunc("/avatar", controller.GenerateAvatarUploadURL).Methods("POST")
	uploadRouter.HandleFunc("/avatar/read", controller.GenerateAvatarReadURL).Methods("POST")
}
