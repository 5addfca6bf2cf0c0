package controllers

import (
	"errors"
	"net/http"

	"skillswap_server/services"
	"skillswap_server/utils"
	"skillswap_server/validation"

	"go.uber.org/zap"
)

type SkillController struct {
	SkillService *services.SkillService
	Logger       *zap.Logger
}

func NewSkillController(skillService *services.SkillService, logger *zap.Logger) *SkillController {
	return &SkillController{SkillService: skillService, Logger: logger}
}

// ListSkills returns all skills, or one user's with ?userId=
func (c *SkillController) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := c.SkillService.ListSkills(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		c.Logger.Error("❌ Failed to list skills", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, skills)
}

func (c *SkillController) AddSkill(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
		Skill  string `json:"skill"`
	}
	if err := decodeBody(r, validation.SkillSchema, &request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	skill, err := c.SkillService.AddSkill(r.Context(), request.UserID, request.Skill)
	if errors.Is(err, services.ErrInvalidInput) {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		c.Logger.Error("❌ Failed to add skill", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Failed to add skill")
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"message": "Skill added",
		"skill":   skill,
	})
}
