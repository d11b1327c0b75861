package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadflow/internal/app/dto"
	"leadflow/internal/app/recommend"
)

// GetRecommendations подбирает темы обучения
// @Summary Рекомендации тем обучения
// @Description Темы подбирает модель Gemini; при любой ошибке модели используется подбор по тегам. Поле source показывает путь: ai или rule-based
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest true "Выбранные потребности и результаты"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/recommendations [post]
func (h *Handler) GetRecommendations(c *gin.Context) {
	var req dto.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rec := h.Recommender.Recommend(c.Request.Context(), recommend.Selection{
		Support:  req.TrainingSupport,
		Outcomes: req.Outcomes,
		Audience: req.TrainingAudience,
		Notes:    req.SpecificNotes,
	})

	c.JSON(http.StatusOK, dto.RecommendationResponse{Success: true, Recommendation: rec})
}
