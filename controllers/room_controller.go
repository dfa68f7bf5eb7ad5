package controllers

import (
	"github.com/gin-gonic/gin"

	"hoteladmin/dto"
	"hoteladmin/response"
	"hoteladmin/services"
	"hoteladmin/validator"
)

// RoomController expone el catálogo de habitaciones.
type RoomController struct {
	rooms *services.RoomService
	auth  *services.AuthService
}

// NewRoomController crea el controlador de habitaciones.
func NewRoomController(rooms *services.RoomService, auth *services.AuthService) *RoomController {
	return &RoomController{rooms: rooms, auth: auth}
}

// List regresa todas las habitaciones.
func (ctl *RoomController) List(c *gin.Context) {
	rooms, err := ctl.rooms.List(c.Request.Context())
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, rooms)
}

// Search busca habitaciones con los filtros de la barra lateral.
func (ctl *RoomController) Search(c *gin.Context) {
	var filters dto.RoomSearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "Filtros de búsqueda inválidos")
		return
	}

	rooms, err := ctl.rooms.Search(c.Request.Context(), filters)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, rooms)
}

// Detail regresa una habitación por id.
func (ctl *RoomController) Detail(c *gin.Context) {
	room, err := ctl.rooms.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, room)
}

// EditForm regresa la habitación lista para el formulario de edición, con
// las amenidades como cadena separada por comas.
func (ctl *RoomController) EditForm(c *gin.Context) {
	form, err := ctl.rooms.EditForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, form)
}

// Create da de alta una habitación.
func (ctl *RoomController) Create(c *gin.Context) {
	var form dto.RoomRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		response.ValidationError(c, "Formulario de habitación inválido")
		return
	}
	if err := validator.ValidateRoom(&form); err != nil {
		respondError(c, ctl.auth, err)
		return
	}

	room, err := ctl.rooms.Create(c.Request.Context(), form)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Created(c, room)
}

// Update actualiza una habitación.
func (ctl *RoomController) Update(c *gin.Context) {
	var form dto.RoomRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		response.ValidationError(c, "Formulario de habitación inválido")
		return
	}
	if err := validator.ValidateRoom(&form); err != nil {
		respondError(c, ctl.auth, err)
		return
	}

	room, err := ctl.rooms.Update(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, room)
}

// SetAvailability prende o apaga la bandera manual de disponibilidad.
func (ctl *RoomController) SetAvailability(c *gin.Context) {
	var form dto.RoomAvailabilityRequest
	if err := c.ShouldBindJSON(&form); err != nil || form.IsAvailable == nil {
		response.ValidationError(c, "Indica la disponibilidad deseada")
		return
	}

	room, err := ctl.rooms.SetAvailability(c.Request.Context(), c.Param("id"), *form.IsAvailable)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, room)
}

// Delete elimina la habitación.
func (ctl *RoomController) Delete(c *gin.Context) {
	if err := ctl.rooms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.NoContent(c)
}
