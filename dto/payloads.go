package dto

// Cuerpos que la consola envía al API del hotel, ya normalizados desde los
// formularios.

// RoomPayload es el cuerpo de alta/edición de habitación; las amenidades van
// como lista ordenada.
type RoomPayload struct {
	Number        string   `json:"number"`
	Type          string   `json:"type"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"pricePerNight"`
	Amenities     []string `json:"amenities"`
	IsAvailable   bool     `json:"isAvailable"`
	Description   string   `json:"description,omitempty"`
}

// ReservationPayload es el cuerpo de creación de reservación. Solo una de
// las dos referencias de huésped viaja; la validación ya resolvió el modo.
type ReservationPayload struct {
	RoomNumber     int                      `json:"roomNumber"`
	CheckIn        string                   `json:"checkIn"`
	CheckOut       string                   `json:"checkOut"`
	NumberOfGuests int                      `json:"numberOfGuests,omitempty"`
	Notes          string                   `json:"notes,omitempty"`
	GuestID        string                   `json:"guestId,omitempty"`
	Guest          *ReservationGuestPayload `json:"guest,omitempty"`
}
