package dto

// RoomRequest es el formulario de alta/edición de habitación. Las amenidades
// llegan como cadena separada por comas, igual que en el formulario.
type RoomRequest struct {
	Number        string  `json:"number" binding:"required"`
	Type          string  `json:"type" binding:"required,roomtype"`
	Capacity      int     `json:"capacity" binding:"required"`
	PricePerNight float64 `json:"pricePerNight"`
	Amenities     string  `json:"amenities"`
	IsAvailable   *bool   `json:"isAvailable"`
	Description   string  `json:"description"`
}

// RoomAvailabilityRequest es el cuerpo del toggle de disponibilidad.
type RoomAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// RoomSearchFilters son los filtros del buscador de habitaciones.
type RoomSearchFilters struct {
	Type        string  `form:"type"`
	MinCapacity int     `form:"minCapacity"`
	MaxPrice    float64 `form:"maxPrice"`
	Available   *bool   `form:"available"`
}
