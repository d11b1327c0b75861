package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты
func (h *Handler) RegisterAPIRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// ============ Мастера (Wizards) ============
	wizards := api.Group("/wizards")
	{
		wizards.GET("/:kind", h.GetWizard)              // GET шаги и поля
		wizards.POST("/:kind/validate", h.ValidateStep) // POST проверка шага
		wizards.POST("/:kind/advance", h.AdvanceStep)   // POST шаг вперед
		wizards.POST("/:kind/retreat", h.RetreatStep)   // POST шаг назад
	}

	// Черновики привязаны к cookie draft_session
	drafts := api.Group("/drafts")
	{
		drafts.GET("/:kind", h.GetDraft)
		drafts.PUT("/:kind", h.SaveDraft)
		drafts.DELETE("/:kind", h.DeleteDraft)
	}

	api.GET("/catalog", h.GetCatalog)
	api.POST("/pricing", h.CalculatePricing)
	api.POST("/recommendations", h.GetRecommendations)

	// ============ Заявки (Submissions) ============
	submissions := api.Group("/submissions")
	{
		submissions.POST("", h.CreateSubmission)                        // POST публичная отправка формы
		submissions.GET("", h.Auth.WithAdminCheck(), h.ListSubmissions) // GET только для администратора
	}

	api.POST("/admin/token", h.IssueAdminToken)

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
