package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterUserRoutes sets up routes for users under /api/users
func RegisterUserRoutes(r *mux.Router, userService *services.UserService, logger *zap.Logger) {
	controller := controllers.NewUserController(userService, logger)

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.HandleFunc("", controller.ListUsers).Methods("GET")
	userRouter.HandleFunc("", controller.CreateUser).Methods("POST")
}

// RegisterSkillRoutes sets up routes for skills under /api/skills
func RegisterSkillRoutes(r *mux.Router, skillService *services.SkillService, logger *zap.Logger) {
	controller := controllers.NewSkillController(skillService, logger)

	skillRouter := r.PathPrefix("/api/skills").Subrouter()
	skillRouter.HandleFunc("", controller.ListSkills).Methods("GET")
	skillRouter.HandleFunc("", controller.AddSkill).Methods("POST")
}
