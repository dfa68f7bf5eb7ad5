package controllers

import (
	"github.com/gin-gonic/gin"

	"hoteladmin/dto"
	"hoteladmin/response"
	"hoteladmin/services"
)

// ReportController expone el reporte mensual.
type ReportController struct {
	reports *services.ReportService
	auth    *services.AuthService
}

// NewReportController crea el controlador de reportes.
func NewReportController(reports *services.ReportService, auth *services.AuthService) *ReportController {
	return &ReportController{reports: reports, auth: auth}
}

// Monthly regresa el reporte del mes pedido; sin parámetros, el mes en curso.
func (ctl *ReportController) Monthly(c *gin.Context) {
	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, "Periodo inválido")
		return
	}

	report, err := ctl.reports.Monthly(c.Request.Context(), query.Year, query.Month)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, report)
}
