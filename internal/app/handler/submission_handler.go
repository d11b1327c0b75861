package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"leadflow/internal/app/ds"
	"leadflow/internal/app/dto"
	"leadflow/internal/app/pricing"
	"leadflow/internal/app/repository"
	"leadflow/internal/app/wizard"
)

var errNotObject = errors.New("request body must be a JSON object")

// decodeObject разбирает тело как JSON-объект; массивы, строки и null отклоняются
func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil, errNotObject
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func stringField(fields map[string]json.RawMessage, name string) string {
	var s string
	if raw, ok := fields[name]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || string(raw) == "null"
}

// submissionPricing: для бизнес-кейса расчет повторяется на сервере,
// для остальных мастеров сохраняется присланный блок как есть.
// Если данные бизнес-кейса не разбираются, заявка все равно сохраняется
// с присланным блоком
func submissionPricing(fields map[string]json.RawMessage, data []byte, clientPricing json.RawMessage) json.RawMessage {
	var clientBlob json.RawMessage
	if !isNull(clientPricing) {
		clientBlob = clientPricing
	}
	if wizard.Kind(stringField(fields, "formType")) != wizard.BusinessCase {
		return clientBlob
	}

	var state wizard.BusinessCaseState
	if err := json.Unmarshal(data, &state); err != nil {
		logrus.Warn("Error recalculating business case pricing, keeping client pricing: ", err)
		return clientBlob
	}
	blob, err := json.Marshal(pricing.Calculate(&state))
	if err != nil {
		logrus.Warn("Error encoding business case pricing, keeping client pricing: ", err)
		return clientBlob
	}
	return blob
}

// CreateSubmission сохраняет итоговую форму мастера
// @Summary Отправка заявки
// @Description Принимает произвольный JSON-объект формы. Ключ pricing хранится отдельно; для formType=business-case расчет выполняется на сервере
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body object true "Состояние формы"
// @Success 201 {object} dto.SubmissionCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/submissions [post]
func (h *Handler) CreateSubmission(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	fields, err := decodeObject(body)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	clientPricing := fields["pricing"]
	delete(fields, "pricing")

	data, err := json.Marshal(fields)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, repository.MsgSaveFailed, err)
		return
	}

	pricingBlob := submissionPricing(fields, data, clientPricing)

	now := time.Now().UTC()
	submission := &ds.Submission{
		SubmissionID: ds.NewSubmissionID(now),
		CompanyName:  stringField(fields, "companyName"),
		ContactName:  stringField(fields, "contactName"),
		Email:        stringField(fields, "email"),
		Phone:        stringField(fields, "phone"),
		SubmittedAt:  now,
		Data:         datatypes.JSON(data),
	}
	if pricingBlob != nil {
		submission.Pricing = datatypes.JSON(pricingBlob)
	}

	if err := h.Repository.CreateSubmission(c.Request.Context(), submission); err != nil {
		msg := repository.DescribeError(err, repository.MsgSaveFailed)
		h.errorResponse(c, http.StatusInternalServerError, msg, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"submission_id": submission.SubmissionID,
		"form_type":     stringField(fields, "formType"),
	}).Info("submission saved")

	if h.Archive != nil {
		if _, err := h.Archive.ArchiveSubmission(c.Request.Context(), submission); err != nil {
			logrus.Warn("Error archiving submission: ", err)
		}
	}

	c.JSON(http.StatusCreated, dto.SubmissionCreatedResponse{
		Success: true,
		Message: "Submission saved successfully",
		ID:      submission.SubmissionID,
	})
}

// ListSubmissions возвращает все заявки
// @Summary Список заявок
// @Description Все заявки, новые первыми. Требует Authorization: Bearer <ADMIN_SECRET> или токен из /api/admin/token
// @Tags Submissions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SubmissionListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/submissions [get]
func (h *Handler) ListSubmissions(c *gin.Context) {
	submissions, err := h.Repository.ListSubmissions(c.Request.Context())
	if err != nil {
		msg := repository.DescribeError(err, "Failed to fetch submissions")
		h.errorResponse(c, http.StatusInternalServerError, msg, err)
		return
	}

	resp := dto.SubmissionListResponse{
		Success:     true,
		Count:       len(submissions),
		Submissions: make([]dto.SubmissionResponse, len(submissions)),
	}
	for i, s := range submissions {
		item := dto.SubmissionResponse{
			ID:          s.SubmissionID,
			CompanyName: s.CompanyName,
			ContactName: s.ContactName,
			Email:       s.Email,
			Phone:       s.Phone,
			SubmittedAt: s.SubmittedAt,
			CreatedAt:   s.CreatedAt,
		}
		if len(s.Data) > 0 {
			item.Data = json.RawMessage(s.Data)
		}
		if len(s.Pricing) > 0 {
			item.Pricing = json.RawMessage(s.Pricing)
		}
		resp.Submissions[i] = item
	}

	c.JSON(http.StatusOK, resp)
}
