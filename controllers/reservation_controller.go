package controllers

import (
	"github.com/gin-gonic/gin"

	"hoteladmin/dto"
	"hoteladmin/response"
	"hoteladmin/services"
)

// ReservationController expone el ciclo de vida de reservaciones.
type ReservationController struct {
	reservations *services.ReservationService
	auth         *services.AuthService
}

// NewReservationController crea el controlador de reservaciones.
func NewReservationController(reservations *services.ReservationService, auth *services.AuthService) *ReservationController {
	return &ReservationController{reservations: reservations, auth: auth}
}

// List regresa las reservaciones filtradas.
func (ctl *ReservationController) List(c *gin.Context) {
	var filters dto.ReservationFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "Filtros de reservaciones inválidos")
		return
	}

	reservations, err := ctl.reservations.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, reservations)
}

// Detail regresa una reservación por id.
func (ctl *ReservationController) Detail(c *gin.Context) {
	reservation, err := ctl.reservations.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, reservation)
}

// AvailableRooms regresa habitaciones libres y ocupadas para un rango.
func (ctl *ReservationController) AvailableRooms(c *gin.Context) {
	var query dto.AvailableRoomsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, "Indica el rango de fechas")
		return
	}

	availability, err := ctl.reservations.AvailableRooms(c.Request.Context(), query)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, availability)
}

// RoomsOverview regresa el tablero operativo por habitación.
func (ctl *ReservationController) RoomsOverview(c *gin.Context) {
	overview, err := ctl.reservations.RoomsOverview(c.Request.Context())
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, overview)
}

// ByRoom regresa las reservaciones futuras de una habitación.
func (ctl *ReservationController) ByRoom(c *gin.Context) {
	futureOnly := c.DefaultQuery("futureOnly", "true") != "false"

	reservations, err := ctl.reservations.ByRoom(c.Request.Context(), c.Param("number"), futureOnly)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, reservations)
}

// createdReservation acompaña la reservación nueva con la advertencia de
// capacidad cuando aplica.
type createdReservation struct {
	Reservation interface{} `json:"reservation"`
	Warning     string      `json:"warning,omitempty"`
}

// Create crea una reservación. La advertencia de capacidad viaja junto con
// el recurso creado; no bloquea la operación.
func (ctl *ReservationController) Create(c *gin.Context) {
	var form dto.ReservationRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		response.ValidationError(c, "Formulario de reservación inválido")
		return
	}

	reservation, warning, err := ctl.reservations.Create(c.Request.Context(), form)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Created(c, createdReservation{Reservation: reservation, Warning: warning})
}

// Update actualiza fechas y detalles de la reservación.
func (ctl *ReservationController) Update(c *gin.Context) {
	var form dto.ReservationUpdateRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		response.ValidationError(c, "Formulario de reservación inválido")
		return
	}

	reservation, err := ctl.reservations.Update(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, reservation)
}

// UpdateStatus cambia el estado de la reservación.
func (ctl *ReservationController) UpdateStatus(c *gin.Context) {
	var form dto.ReservationStatusRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		response.ValidationError(c, "Indica el estado deseado")
		return
	}

	reservation, err := ctl.reservations.UpdateStatus(c.Request.Context(), c.Param("id"), form.Status)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, reservation)
}
