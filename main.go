package main

import (
	"log"

	"hoteladmin/client"
	"hoteladmin/config"
	"hoteladmin/jobs"
	"hoteladmin/routes"
	"hoteladmin/services"
	"hoteladmin/services/logger"
	"hoteladmin/utils"
	"hoteladmin/validator"
)

func main() {
	app, err := config.InitApp()
	if err != nil {
		log.Fatalf("No se pudo inicializar la aplicación: %v", err)
	}

	validator.RegisterBindingValidators()

	api := client.New(config.BackendURL(), config.BackendHTTPClient())
	cache := services.NewRedisCache(app.Redis)
	notifier := services.NewNotifier(app.Melody)
	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	svc := routes.Services{
		Auth:         services.NewAuthService(api, cache, appLogger),
		Rooms:        services.NewRoomService(api, cache, notifier, appLogger),
		Guests:       services.NewGuestService(api, cache, notifier, appLogger),
		Reservations: services.NewReservationService(api, cache, notifier, appLogger),
		Payments:     services.NewPaymentService(api, cache, notifier, appLogger),
		Reports:      services.NewReportService(api, cache, appLogger),
	}

	if err := jobs.InitCronJobs(app.Cron, svc.Reports, svc.Reservations, notifier); err != nil {
		log.Fatalf("No se pudieron inicializar los cron jobs: %v", err)
	}

	config.InitWebSocket(app.Router, app.Melody)

	routes.SetupRoutes(app.Router, svc)

	port := config.GetEnv("PORT", "8083")
	utils.LogInfo("Consola iniciando en el puerto %s", port)
	log.Println("Servidor iniciando en el puerto " + port + "...")
	if err := app.Router.Run(":" + port); err != nil {
		log.Fatalf("No se pudo iniciar el servidor: %v", err)
	}
}
