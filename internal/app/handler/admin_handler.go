package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"leadflow/internal/app/dto"
	"leadflow/internal/app/middleware"
)

// IssueAdminToken обменивает ADMIN_SECRET на токен с ограниченным сроком жизни
// @Summary Токен администратора
// @Description Возвращает JWT (HS256), который принимается вместо ADMIN_SECRET в заголовке Authorization
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.AdminTokenRequest true "Секрет администратора"
// @Success 200 {object} dto.AdminTokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/admin/token [post]
func (h *Handler) IssueAdminToken(c *gin.Context) {
	var req dto.AdminTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if !middleware.SecretMatches(req.Secret, h.Config.AdminSecret) {
		logrus.WithField("client_ip", c.ClientIP()).Warn("admin token requested with wrong secret")
		h.errorResponse(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	token, expiresAt, err := h.Auth.IssueAdminToken(time.Now())
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminTokenResponse{Success: true, Token: token, ExpiresAt: expiresAt})
}
