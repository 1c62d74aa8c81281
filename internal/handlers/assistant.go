package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulanova/aulanova-backend/internal/pkg/apperr"
	"github.com/aulanova/aulanova-backend/internal/services"
)

type AssistantHandler struct {
	assistantService services.AssistantService
}

func NewAssistantHandler(assistantService services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

func (ah *AssistantHandler) Query(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
		return
	}
	result, err := ah.assistantService.AnswerQuestion(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidArgument) {
			RespondError(c, http.StatusBadRequest, "invalid_question", err)
			return
		}
		RespondError(c, http.StatusBadGateway, "assistant_unavailable", err)
		return
	}
	RespondOK(c, result)
}
