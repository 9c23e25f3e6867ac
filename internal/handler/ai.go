package handler

import (
	"encoding/json"
	"net/http"

	"portfolio/internal/service"
)

type AIHandler struct {
	aiService *service.AIService
}

func NewAIHandler(aiService *service.AIService) *AIHandler {
	return &AIHandler{
		aiService: aiService,
	}
}

// GenerateDescription prefills a project description. Provider failures
// degrade to empty strings, the endpoint never reports them as errors.
func (h *AIHandler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title        string   `json:"title"`
		Technologies []string `json:"technologies"`
		Notes        string   `json:"notes"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	desc := h.aiService.GenerateDescription(r.Context(), req.Title, req.Technologies, req.Notes)
	respondJSON(w, http.StatusOK, desc)
}
