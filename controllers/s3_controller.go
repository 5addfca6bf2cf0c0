package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"skillswap_server/middleware"
	"skillswap_server/services"
	"skillswap_server/utils"

	"go.uber.org/zap"
)

// S3Controller presigns avatar uploads
type S3Controller struct {
	S3Service *services.S3Service
	Logger    *zap.Logger
}

func NewS3Controller(s3Service *services.S3Service, logger *zap.Logger) *S3Controller {
	return &S3Controller{S3Service: s3Service, Logger: logger}
}

// GenerateAvatarUploadURL generates a presigned URL for an avatar upload
func (c *S3Controller) GenerateAvatarUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.FileName == "" || !strings.HasPrefix(payload.FileType, "image/") {
		utils.WriteError(w, http.StatusBadRequest, "fileName and an image fileType are required")
		return
	}

	url, key, err := c.S3Service.GenerateUploadURL(r.Context(), middleware.UserID(r.Context()), payload.FileName, payload.FileType)
	if err != nil {
		c.Logger.Error("❌ Error generating pre-signed URL", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Failed to generate pre-signed URL")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// GenerateAvatarReadURL generates a presigned URL for reading an avatar
func (c *S3Controller) GenerateAvatarReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || !strings.HasPrefix(payload.Key, "avatars/") {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	url, err := c.S3Service.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		c.Logger.Error("❌ Error generating read pre-signed URL", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Failed to generate read pre-signed URL")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url})
}
