package models

import "time"

// Room representa una habitación tal como la entrega el API del hotel.
// La disponibilidad es una bandera manual, independiente del estado de las
// reservaciones de la habitación.
type Room struct {
	ID            string    `json:"_id"`
	Number        string    `json:"number"`
	Type          string    `json:"type"`
	Capacity      int       `json:"capacity"`
	PricePerNight float64   `json:"pricePerNight"`
	Amenities     []string  `json:"amenities"`
	IsAvailable   bool      `json:"isAvailable"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RoomAvailability agrupa la respuesta de habitaciones libres y ocupadas
// para un rango de fechas.
type RoomAvailability struct {
	Available []Room `json:"available"`
	Reserved  []Room `json:"reserved"`
}

// RoomOverview resume el estado operativo de una habitación en el tablero.
type RoomOverview struct {
	Room               Room         `json:"room"`
	CurrentReservation *Reservation `json:"currentReservation,omitempty"`
	UpcomingCount      int          `json:"upcomingCount"`
}
