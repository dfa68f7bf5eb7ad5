package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"hoteladmin/services"
)

// ReportWarmer precalienta el cache del reporte mensual.
type ReportWarmer interface {
	WarmCurrent(ctx context.Context) error
}

// OverviewWarmer refresca el tablero operativo de habitaciones.
type OverviewWarmer interface {
	WarmOverview(ctx context.Context) error
}

const warmTimeout = 2 * time.Minute

// InitCronJobs programa el precalentado nocturno del reporte mensual y del
// tablero de habitaciones. Corre a medianoche, cuando el backend ya cerró el
// día, y avisa a las consolas abiertas para que refresquen sus pantallas.
func InitCronJobs(c *cron.Cron, reports ReportWarmer, overview OverviewWarmer, notifier *services.Notifier) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
		defer cancel()

		if err := reports.WarmCurrent(ctx); err != nil {
			log.Printf("No se pudo precalentar el reporte mensual: %v", err)
		} else {
			notifier.Invalidate(services.EventReports)
			log.Println("Reporte mensual precalentado")
		}

		if overview == nil {
			return
		}
		if err := overview.WarmOverview(ctx); err != nil {
			log.Printf("No se pudo refrescar el tablero de habitaciones: %v", err)
			return
		}
		notifier.Invalidate(services.EventReservations)
		log.Println("Tablero de habitaciones refrescado")
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs inicializados")
	return nil
}
