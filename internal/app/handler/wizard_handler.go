package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadflow/internal/app/dto"
	"leadflow/internal/app/wizard"
)

// lookupWizard отвечает 404, если тип мастера неизвестен
func (h *Handler) lookupWizard(c *gin.Context) (wizard.Definition, bool) {
	def, ok := wizard.Lookup(c.Param("kind"))
	if !ok {
		h.errorResponse(c, http.StatusNotFound, "Unknown wizard: "+c.Param("kind"), nil)
	}
	return def, ok
}

// GetWizard возвращает шаги мастера
// @Summary Описание мастера
// @Description Шаги и поля мастера; conditional=true у полей, видимость которых зависит от других ответов
// @Tags Wizards
// @Produce json
// @Param kind path string true "business-case, consulting или training"
// @Success 200 {object} dto.WizardResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/wizards/{kind} [get]
func (h *Handler) GetWizard(c *gin.Context) {
	def, ok := h.lookupWizard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.WizardResponse{Success: true, Kind: def.Kind(), Steps: def.Describe()})
}

func (h *Handler) bindStep(c *gin.Context) (wizard.Definition, dto.WizardStepRequest, bool) {
	def, ok := h.lookupWizard(c)
	if !ok {
		return nil, dto.WizardStepRequest{}, false
	}
	var req dto.WizardStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return nil, req, false
	}
	return def, req, true
}

// ValidateStep проверяет один шаг
// @Summary Проверка шага
// @Description Возвращает список ошибок шага; пустой список означает, что шаг заполнен
// @Tags Wizards
// @Accept json
// @Produce json
// @Param kind path string true "business-case, consulting или training"
// @Param request body dto.WizardStepRequest true "Номер шага и состояние формы"
// @Success 200 {object} dto.WizardStepResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/wizards/{kind}/validate [post]
func (h *Handler) ValidateStep(c *gin.Context) {
	def, req, ok := h.bindStep(c)
	if !ok {
		return
	}
	res, err := def.Validate(req.State, *req.Step)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid form state", err)
		return
	}
	c.JSON(http.StatusOK, dto.WizardStepResponse{Success: true, Result: res})
}

// AdvanceStep переходит на следующий шаг, если текущий заполнен
// @Summary Шаг вперед
// @Description Проверяет текущий шаг; при ошибках остается на нем и возвращает ошибки
// @Tags Wizards
// @Accept json
// @Produce json
// @Param kind path string true "business-case, consulting или training"
// @Param request body dto.WizardStepRequest true "Текущий шаг и состояние формы"
// @Success 200 {object} dto.WizardStepResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/wizards/{kind}/advance [post]
func (h *Handler) AdvanceStep(c *gin.Context) {
	h.navigate(c, true)
}

// RetreatStep возвращается на предыдущий шаг без проверки
// @Summary Шаг назад
// @Tags Wizards
// @Accept json
// @Produce json
// @Param kind path string true "business-case, consulting или training"
// @Param request body dto.WizardStepRequest true "Текущий шаг и состояние формы"
// @Success 200 {object} dto.WizardStepResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/wizards/{kind}/retreat [post]
func (h *Handler) RetreatStep(c *gin.Context) {
	h.navigate(c, false)
}

func (h *Handler) navigate(c *gin.Context, forward bool) {
	def, req, ok := h.bindStep(c)
	if !ok {
		return
	}
	res, err := def.Navigate(req.State, *req.Step, forward)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid form state", err)
		return
	}
	c.JSON(http.StatusOK, dto.WizardStepResponse{Success: true, Result: res})
}
