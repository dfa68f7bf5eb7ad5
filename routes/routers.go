package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteladmin/controllers"
	"hoteladmin/middleware"
	"hoteladmin/services"
)

// Services agrupa los servicios que consumen los controladores.
type Services struct {
	Auth         *services.AuthService
	Rooms        *services.RoomService
	Guests       *services.GuestService
	Reservations *services.ReservationService
	Payments     *services.PaymentService
	Reports      *services.ReportService
}

// SetupRoutes registra todas las rutas de la consola sobre /api/v1. Todo lo
// que no sea autenticación exige sesión.
func SetupRoutes(router *gin.Engine, svc Services) {
	authController := controllers.NewAuthController(svc.Auth)
	roomController := controllers.NewRoomController(svc.Rooms, svc.Auth)
	guestController := controllers.NewGuestController(svc.Guests, svc.Auth)
	reservationController := controllers.NewReservationController(svc.Reservations, svc.Auth)
	paymentController := controllers.NewPaymentController(svc.Payments, svc.Auth)
	reportController := controllers.NewReportController(svc.Reports, svc.Auth)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/register", authController.Register)
	v1.DELETE("/auth/logout", authController.Logout)

	guard := v1.Group("", middleware.RequireSession(svc.Auth))

	guard.GET("/auth/me", authController.Me)

	guard.GET("/rooms", roomController.List)
	guard.GET("/rooms/search", roomController.Search)
	guard.POST("/rooms", roomController.Create)
	guard.GET("/rooms/:id", roomController.Detail)
	guard.GET("/rooms/:id/edit", roomController.EditForm)
	guard.PUT("/rooms/:id", roomController.Update)
	guard.PATCH("/rooms/:id/availability", roomController.SetAvailability)
	guard.DELETE("/rooms/:id", roomController.Delete)

	guard.GET("/guests", guestController.List)
	guard.GET("/guests/search", guestController.Search)
	guard.POST("/guests", guestController.Create)
	guard.GET("/guests/:id", guestController.Detail)
	guard.PUT("/guests/:id", guestController.Update)
	guard.DELETE("/guests/:id", guestController.Delete)

	guard.GET("/reservations", reservationController.List)
	guard.GET("/reservations/rooms/available", reservationController.AvailableRooms)
	guard.GET("/reservations/rooms/overview", reservationController.RoomsOverview)
	guard.GET("/reservations/rooms/:number/reservations", reservationController.ByRoom)
	guard.POST("/reservations", reservationController.Create)
	guard.GET("/reservations/:id", reservationController.Detail)
	guard.PUT("/reservations/:id", reservationController.Update)
	guard.PATCH("/reservations/:id/status", reservationController.UpdateStatus)

	guard.GET("/payments", paymentController.List)
	guard.GET("/payments/options", paymentController.Options)
	guard.POST("/payments", paymentController.Create)
	guard.GET("/payments/:id", paymentController.Detail)
	guard.GET("/payments/reservation/:id", paymentController.ByReservation)

	guard.GET("/reports/monthly", reportController.Monthly)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
