package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadflow/internal/app/catalog"
	"leadflow/internal/app/dto"
)

// GetCatalog возвращает справочники для построения форм
// @Summary Справочники
// @Description Отделы с целями и компетенциями, программы, soft skills, доп. услуги, срочность, темы обучения
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /api/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	departments := catalog.Departments()
	deps := make([]dto.DepartmentResponse, len(departments))
	for i, d := range departments {
		goalIDs := make([]string, len(d.Goals))
		for j, g := range d.Goals {
			goalIDs[j] = g.ID
		}
		deps[i] = dto.DepartmentResponse{
			Department: d,
			Benchmark:  catalog.BenchmarkFor(d.ID),
			Pillars:    catalog.PillarsFor(catalog.CompetenciesFor(d.ID, goalIDs)),
		}
	}

	c.JSON(http.StatusOK, dto.CatalogResponse{
		Success:         true,
		Departments:     deps,
		Programs:        catalog.Programs(),
		SoftSkills:      catalog.SoftSkills(),
		AddOns:          catalog.AddOns(),
		ConsultingTypes: catalog.ConsultingTypes(),
		UrgencyLevels:   catalog.UrgencyLevels(),
		SupportOptions:  catalog.SupportCategories(),
		Outcomes:        catalog.Outcomes(),
		Topics:          catalog.Topics(),
	})
}
