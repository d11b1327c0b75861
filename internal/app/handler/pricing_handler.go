package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"leadflow/internal/app/dto"
	"leadflow/internal/app/pricing"
	"leadflow/internal/app/wizard"
)

// CalculatePricing считает стоимость и ROI бизнес-кейса "на лету"
// @Summary Расчет стоимости и ROI
// @Description Принимает состояние мастера Business Case Builder и возвращает разбивку стоимости и три сценария ROI
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body wizard.BusinessCaseState true "Состояние бизнес-кейса"
// @Success 200 {object} dto.PricingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/pricing [post]
func (h *Handler) CalculatePricing(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if _, err := decodeObject(body); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var state wizard.BusinessCaseState
	if err := json.Unmarshal(body, &state); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid business case data", err)
		return
	}

	c.JSON(http.StatusOK, dto.PricingResponse{Success: true, Pricing: pricing.Calculate(&state)})
}
