package dto

// GuestRequest es el formulario de alta/edición de huésped.
type GuestRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	DocumentType   string `json:"documentType" binding:"required,doctype"`
	DocumentNumber string `json:"documentNumber" binding:"required"`
	Notes          string `json:"notes"`
}

// GuestListFilters son los filtros del listado paginado de huéspedes.
type GuestListFilters struct {
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
	Search       string `form:"search"`
	DocumentType string `form:"documentType"`
}
