package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"skillswap_server/middleware"
	"skillswap_server/models"
	"skillswap_server/services"
	"skillswap_server/utils"
	"skillswap_server/validation"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// MatchController handles HTTP requests for the match lifecycle
type MatchController struct {
	MatchService *services.MatchService
	Logger       *zap.Logger
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService, logger *zap.Logger) *MatchController {
	return &MatchController{MatchService: matchService, Logger: logger}
}

// decodeBody validates the request body against schema and decodes it into dst.
func decodeBody(r *http.Request, schema string, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	if err := validation.Validate(schema, body); err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

// writeServiceError maps lifecycle errors to status codes. The collections
// are unchanged in every case.
func (mc *MatchController) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrMatchNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDuplicateMatch):
		utils.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrAnonymous):
		utils.WriteError(w, http.StatusUnauthorized, err.Error())
	default:
		mc.Logger.Error("❌ Match operation failed", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Failed to process match request")
	}
}

// GetMatches returns the caller's pending, active and completed collections
func (mc *MatchController) GetMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := mc.MatchService.GetMatches(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		mc.writeServiceError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{"matches": matches})
}

// GetMatch returns one match and the state it is in
func (mc *MatchController) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	match, err := mc.MatchService.GetMatch(r.Context(), middleware.UserID(r.Context()), matchID)
	if err != nil {
		mc.writeServiceError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"state": match.State(),
		"match": match,
	})
}

// GetStats returns the dashboard counters
func (mc *MatchController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := mc.MatchService.GetStats(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		mc.writeServiceError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, stats)
}

// ProposeMatch adds a pending match from the recommendation source
func (mc *MatchController) ProposeMatch(w http.ResponseWriter, r *http.Request) {
	var proposal models.PendingMatch
	if err := decodeBody(r, validation.ProposalSchema, &proposal); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	match, matches, err := mc.MatchService.Propose(r.Context(), middleware.UserID(r.Context()), proposal)
	if err != nil {
		mc.writeServiceError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"message": "Match proposed successfully",
		"match":   match,
		"matches": matches,
	})
}

// AcceptMatch moves a pending match to active
func (mc *MatchController) AcceptMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	match, matches, err := mc.MatchService.Accept(r.Context(), middleware.UserID(r.Context()), matchID)
	if err != nil {
		mc.writeServiceError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"message": "Match accepted",
		"match":   match,
		"matches": matches,
	})
}

// DeclineMatch removes a pending match
func (mc *MatchController) DeclineMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	matches, err := mc.MatchService.Decline(r.Context(), middleware.UserID(r.Context()), matchID)
	if err != nil {
		mc.writeServiceError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"message": "Match declined",
		"matches": matches,
	})
}

// ScheduleSession sets the next session of an active match
func (mc *MatchController) ScheduleSession(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Date  string `json:"date"`
		Time  string `json:"time"`
		Notes string `json:"notes"`
	}
	if err := decodeBody(r, validation.ScheduleSchema, &request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	matchID := mux.Vars(r)["matchId"]
	match, matches, err := mc.MatchService.Schedule(r.Context(), middleware.UserID(r.Context()), matchID, request.Date, request.Time, request.Notes)
	if err != nil {
		mc.writeServiceError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"message": "Session scheduled",
		"match":   match,
		"matches": matches,
	})
}

// SubmitReview completes an active match
func (mc *MatchController) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Rating   int    `json:"rating"`
		Feedback string `json:"feedback"`
	}
	if err := decodeBody(r, validation.ReviewSchema, &request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	matchID := mux.Vars(r)["matchId"]
	match, matches, err := mc.MatchService.SubmitReview(r.Context(), middleware.UserID(r.Context()), matchID, request.Rating, request.Feedback)
	if err != nil {
		mc.writeServiceError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"message": "Review submitted",
		"match":   match,
		"matches": matches,
	})
}
