package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hoteladmin/dto"
	"hoteladmin/response"
	"hoteladmin/services"
	"hoteladmin/validator"
)

// GuestController expone el directorio de huéspedes.
type GuestController struct {
	guests *services.GuestService
	auth   *services.AuthService
}

// NewGuestController crea el controlador de huéspedes.
func NewGuestController(guests *services.GuestService, auth *services.AuthService) *GuestController {
	return &GuestController{guests: guests, auth: auth}
}

// List regresa el listado paginado de huéspedes.
func (ctl *GuestController) List(c *gin.Context) {
	var filters dto.GuestListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "Filtros de huéspedes inválidos")
		return
	}
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 || filters.Limit > 100 {
		filters.Limit = 10
	}

	list, err := ctl.guests.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.SuccessWithPagination(c, list.Guests, list.Page, filters.Limit, list.Total)
}

// Search busca huéspedes ignorando acentos y errores de tecleo.
func (ctl *GuestController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.ValidationError(c, "Escribe algo para buscar")
		return
	}

	matches, err := ctl.guests.SearchFuzzy(c.Request.Context(), query)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, matches)
}

// Detail regresa un huésped por id.
func (ctl *GuestController) Detail(c *gin.Context) {
	guest, err := ctl.guests.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, guest)
}

// Create da de alta un huésped.
func (ctl *GuestController) Create(c *gin.Context) {
	var form dto.GuestRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		response.ValidationError(c, "Formulario de huésped inválido")
		return
	}
	if err := validator.ValidateGuest(&form); err != nil {
		respondError(c, ctl.auth, err)
		return
	}

	guest, err := ctl.guests.Create(c.Request.Context(), form)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Created(c, guest)
}

// Update actualiza un huésped.
func (ctl *GuestController) Update(c *gin.Context) {
	var form dto.GuestRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		response.ValidationError(c, "Formulario de huésped inválido")
		return
	}
	if err := validator.ValidateGuest(&form); err != nil {
		respondError(c, ctl.auth, err)
		return
	}

	guest, err := ctl.guests.Update(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, guest)
}

// Delete elimina un huésped.
func (ctl *GuestController) Delete(c *gin.Context) {
	if err := ctl.guests.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.NoContent(c)
}
