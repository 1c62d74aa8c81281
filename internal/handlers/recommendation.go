package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aulanova/aulanova-backend/internal/pkg/apperr"
	"github.com/aulanova/aulanova-backend/internal/services"
)

type RecommendationHandler struct {
	recommendationService services.RecommendationService
}

func NewRecommendationHandler(recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// Generate runs the recommendation pipeline for the user in the path.
// A missing user or profile is a 404; pipeline degradation is reported
// inside the 200 payload via its status field.
func (rh *RecommendationHandler) Generate(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", errors.New("user_id must be a valid UUID"))
		return
	}
	result, err := rh.recommendationService.Generate(c.Request.Context(), userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			RespondError(c, http.StatusNotFound, "not_found", errors.New(result.Error))
			return
		}
		if apperr.IsUpstreamUnavailable(err) {
			RespondError(c, http.StatusBadGateway, "pipeline_unavailable", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "pipeline_failed", err)
		return
	}
	RespondOK(c, result)
}
