package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadflow/internal/app/draft"
	"leadflow/internal/app/dto"
)

const draftCookie = "draft_session"

// draftKey возвращает ключ черновика; create=true выдает новую сессию, если cookie нет
func (h *Handler) draftKey(c *gin.Context, kind string, create bool) (string, bool) {
	session, err := c.Cookie(draftCookie)
	if err == nil {
		if _, perr := uuid.Parse(session); perr != nil {
			session = ""
		}
	}
	if session == "" {
		if !create {
			return "", false
		}
		session = uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(draftCookie, session, int(h.draftTTL().Seconds()), "/api/drafts", "", h.Config.IsProduction(), true)
	}
	return draft.Key(session, kind), true
}

func (h *Handler) draftTTL() time.Duration {
	if h.Config.Recommend.DraftTTL > 0 {
		return h.Config.Recommend.DraftTTL
	}
	return 24 * time.Hour
}

// GetDraft возвращает сохраненный черновик формы
// @Summary Черновик формы
// @Tags Drafts
// @Produce json
// @Param kind path string true "business-case, consulting или training"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/drafts/{kind} [get]
func (h *Handler) GetDraft(c *gin.Context) {
	def, ok := h.lookupWizard(c)
	if !ok {
		return
	}
	key, ok := h.draftKey(c, string(def.Kind()), false)
	if !ok {
		h.errorResponse(c, http.StatusNotFound, "Draft not found", nil)
		return
	}

	d, found, err := h.Drafts.Get(c.Request.Context(), key)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Failed to load draft", err)
		return
	}
	if !found {
		h.errorResponse(c, http.StatusNotFound, "Draft not found", nil)
		return
	}

	c.JSON(http.StatusOK, dto.DraftResponse{Success: true, Kind: def.Kind(), Draft: d})
}

// SaveDraft сохраняет незаконченную форму
// @Summary Сохранение черновика
// @Description Сохраняет состояние формы на 24 часа; сессия хранится в cookie draft_session
// @Tags Drafts
// @Accept json
// @Produce json
// @Param kind path string true "business-case, consulting или training"
// @Param request body object true "Состояние формы"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/drafts/{kind} [put]
func (h *Handler) SaveDraft(c *gin.Context) {
	def, ok := h.lookupWizard(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if _, err := decodeObject(body); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	key, _ := h.draftKey(c, string(def.Kind()), true)
	if err := h.Drafts.Put(c.Request.Context(), key, json.RawMessage(body)); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Failed to save draft", err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Draft saved"})
}

// DeleteDraft удаляет черновик (после отправки или сброса формы)
// @Summary Удаление черновика
// @Tags Drafts
// @Produce json
// @Param kind path string true "business-case, consulting или training"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/drafts/{kind} [delete]
func (h *Handler) DeleteDraft(c *gin.Context) {
	def, ok := h.lookupWizard(c)
	if !ok {
		return
	}
	if key, ok := h.draftKey(c, string(def.Kind()), false); ok {
		if err := h.Drafts.Delete(c.Request.Context(), key); err != nil {
			h.errorResponse(c, http.StatusInternalServerError, "Failed to delete draft", err)
			return
		}
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Draft deleted"})
}
