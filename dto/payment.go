package dto

// PaymentRequest es el formulario de registro de pago.
type PaymentRequest struct {
	ReservationID string  `json:"reservationId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Method        string  `json:"method" binding:"required,paymethod"`
	Notes         string  `json:"notes"`
}

// PaymentFilters son los filtros del listado de pagos.
type PaymentFilters struct {
	ReservationID string `form:"reservationId"`
	GuestID       string `form:"guestId"`
	Method        string `form:"method"`
	StartDate     string `form:"startDate"`
	EndDate       string `form:"endDate"`
}

// PaymentOption es una reservación elegible para recibir un pago: solo las
// que tienen saldo pendiente, con el monto prellenado al saldo completo.
type PaymentOption struct {
	ReservationID string  `json:"reservationId"`
	GuestName     string  `json:"guestName"`
	RoomNumber    int     `json:"roomNumber"`
	TotalPrice    float64 `json:"totalPrice"`
	TotalPaid     float64 `json:"totalPaid"`
	BalanceDue    float64 `json:"balanceDue"`
	PrefillAmount float64 `json:"prefillAmount"`
}
