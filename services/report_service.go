package services

import (
	"context"
	"fmt"
	"time"

	"hoteladmin/client"
	"hoteladmin/errors"
	"hoteladmin/models"
	"hoteladmin/services/logger"
)

// ReportService expone el reporte mensual. El agregado lo calcula el
// backend; aquí solo se cachea, porque es la consulta más cara del API.
type ReportService struct {
	api    *client.Client
	cache  Cache
	logger logger.Logger
}

// NewReportService crea el servicio de reportes.
func NewReportService(api *client.Client, cache Cache, log logger.Logger) *ReportService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReportService{api: api, cache: cache, logger: log}
}

// Monthly regresa el reporte del mes indicado. Año o mes en cero se resuelven
// al mes en curso.
func (s *ReportService) Monthly(ctx context.Context, year, month int) (*models.MonthlyReport, error) {
	year, month, err := resolvePeriod(year, month)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%smonthly:%04d-%02d", reportsKeyPrefix, year, month)

	var report models.MonthlyReport
	if found, err := s.cache.Get(ctx, key, &report); err == nil && found {
		return &report, nil
	}

	fetched, err := s.api.MonthlyReport(ctx, year, month)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, fetched, ReportTTL); err != nil {
		s.logger.Error("no se pudo guardar el reporte mensual: %v", err)
	}
	return fetched, nil
}

// WarmCurrent refresca el reporte del mes en curso directo del backend.
// Lo usa el job nocturno para que la primera consulta del día no pague la
// agregación.
func (s *ReportService) WarmCurrent(ctx context.Context) error {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	report, err := s.api.MonthlyReport(ctx, year, month)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%smonthly:%04d-%02d", reportsKeyPrefix, year, month)
	return s.cache.Set(ctx, key, report, ReportTTL)
}

// resolvePeriod completa el periodo con el mes en curso y rechaza meses fuera
// del calendario.
func resolvePeriod(year, month int) (int, int, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidDate, "Mes inválido", nil)
	}
	if year < 2000 || year > now.Year()+1 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidDate, "Año inválido", nil)
	}
	return year, month, nil
}
