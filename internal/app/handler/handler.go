package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"leadflow/internal/app/config"
	"leadflow/internal/app/draft"
	"leadflow/internal/app/ds"
	"leadflow/internal/app/dto"
	"leadflow/internal/app/middleware"
	"leadflow/internal/app/recommend"
	"leadflow/internal/app/repository"
)

// Archiver сохраняет копию заявки во внешнем хранилище
type Archiver interface {
	ArchiveSubmission(ctx context.Context, s *ds.Submission) (string, error)
}

type Handler struct {
	Repository  *repository.Repository
	Recommender *recommend.Service
	Drafts      draft.Store
	Archive     Archiver // nil, если MinIO не настроен
	Auth        *middleware.AuthMiddleware
	Config      *config.Config
}

func NewHandler(
	r *repository.Repository,
	rec *recommend.Service,
	drafts draft.Store,
	archive Archiver,
	auth *middleware.AuthMiddleware,
	cfg *config.Config,
) *Handler {
	return &Handler{
		Repository:  r,
		Recommender: rec,
		Drafts:      drafts,
		Archive:     archive,
		Auth:        auth,
		Config:      cfg,
	}
}

// ============ Вспомогательные функции ============

// errorResponse логирует причину и отвечает {success:false, error}.
// Текст исходной ошибки попадает в details только для 5xx вне production
func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string, err error) {
	resp := dto.ErrorResponse{Error: message}
	if err != nil {
		if statusCode >= 500 {
			logrus.Error(message, ": ", err)
			if !h.Config.IsProduction() {
				resp.Details = err.Error()
			}
		} else {
			logrus.Debug(message, ": ", err)
		}
		_ = c.Error(err)
	}
	c.JSON(statusCode, resp)
}
