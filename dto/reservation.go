package dto

// Modos de selección de huésped en el formulario de reservación.
const (
	GuestModeExisting = "existing"
	GuestModeNew      = "new"
)

// ReservationGuestPayload son los datos del huésped capturado en línea al
// crear la reservación.
type ReservationGuestPayload struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DocumentType   string `json:"documentType,omitempty"`
	DocumentNumber string `json:"documentNumber,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// ReservationRequest es el formulario de creación de reservación. Mode decide
// cuál de las dos referencias de huésped se respeta: `existing` conserva
// GuestID y descarta Guest; `new` conserva Guest y descarta GuestID.
type ReservationRequest struct {
	RoomNumber     int                      `json:"roomNumber" binding:"required"`
	CheckIn        string                   `json:"checkIn" binding:"required"`
	CheckOut       string                   `json:"checkOut" binding:"required"`
	NumberOfGuests int                      `json:"numberOfGuests"`
	Notes          string                   `json:"notes"`
	Mode           string                   `json:"mode"`
	GuestID        string                   `json:"guestId"`
	Guest          *ReservationGuestPayload `json:"guest"`
}

// ReservationUpdateRequest es el formulario de edición: fechas, habitación y
// detalles, sin bloque de huésped.
type ReservationUpdateRequest struct {
	RoomNumber     int    `json:"roomNumber" binding:"required"`
	CheckIn        string `json:"checkIn" binding:"required"`
	CheckOut       string `json:"checkOut" binding:"required"`
	NumberOfGuests int    `json:"numberOfGuests"`
	Notes          string `json:"notes"`
}

// ReservationStatusRequest es el cuerpo del PATCH de estado.
type ReservationStatusRequest struct {
	Status string `json:"status" binding:"required,resstatus"`
}

// ReservationFilters son los filtros del listado de reservaciones.
type ReservationFilters struct {
	Status     string `form:"status"`
	RoomID     string `form:"roomId"`
	GuestEmail string `form:"guestEmail"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
}

// AvailableRoomsQuery es el rango de fechas para consultar disponibilidad.
type AvailableRoomsQuery struct {
	CheckIn  string `form:"checkIn" binding:"required"`
	CheckOut string `form:"checkOut" binding:"required"`
}
