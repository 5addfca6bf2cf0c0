package controllers

import (
	"errors"
	"net/http"

	"skillswap_server/models"
	"skillswap_server/services"
	"skillswap_server/utils"
	"skillswap_server/validation"

	"go.uber.org/zap"
)

// UserController handles requests related to users
type UserController struct {
	UserService *services.UserService
	Logger      *zap.Logger
}

func NewUserController(userService *services.UserService, logger *zap.Logger) *UserController {
	return &UserController{UserService: userService, Logger: logger}
}

// ListUsers returns every registered user
func (c *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.UserService.ListUsers(r.Context())
	if err != nil {
		c.Logger.Error("❌ Failed to list users", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, users)
}

// CreateUser registers a user; an existing id is reported, not overwritten
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeBody(r, validation.UserSchema, &user); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if user.ID == "" || user.Email == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, map[string]string{"message": "Missing required fields (id or email)"})
		return
	}

	created, err := c.UserService.AddUser(r.Context(), user)
	if errors.Is(err, services.ErrUserExists) {
		utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"message": "User already exists", "userId": user.ID})
		return
	}
	if err != nil {
		c.Logger.Error("❌ Failed to add user", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"message": "User added successfully!",
		"user":    created,
	})
}
