package models

// MonthlyReport es el agregado mensual precalculado por el backend.
// La consola solo lo presenta; no hay agregación local.
type MonthlyReport struct {
	Year                 int                `json:"year"`
	Month                int                `json:"month"`
	OccupancyRate        float64            `json:"occupancyRate"`
	TotalReservations    int                `json:"totalReservations"`
	TotalIncome          float64            `json:"totalIncome"`
	CancelledReservations int               `json:"cancelledReservations"`
	CancellationRate     float64            `json:"cancellationRate"`
	RoomRevenueBreakdown []RoomRevenueEntry `json:"roomRevenueBreakdown"`
}

// RoomRevenueEntry es el desglose de ingresos por habitación.
type RoomRevenueEntry struct {
	RoomNumber   string  `json:"roomNumber"`
	RoomType     string  `json:"roomType"`
	Revenue      float64 `json:"revenue"`
	Reservations int     `json:"reservations"`
}
