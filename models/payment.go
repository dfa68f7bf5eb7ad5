package models

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

// Payment representa un pago aplicado a una reservación.
type Payment struct {
	ID          string         `json:"_id"`
	Reservation ReservationRef `json:"reservation"`
	Guest       GuestRef       `json:"guest"`
	Amount      float64        `json:"amount"`
	Method      string         `json:"method"`
	Date        string         `json:"date"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ReservationRef acepta la reservación embebida o su id como cadena.
type ReservationRef struct {
	Reservation *Reservation
	ID          string
}

func (r *ReservationRef) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '{':
		var reservation Reservation
		if err := json.Unmarshal(data, &reservation); err != nil {
			return err
		}
		r.Reservation = &reservation
		return nil
	case '"':
		return json.Unmarshal(data, &r.ID)
	}
	return fmt.Errorf("reservation reference has unexpected shape: %s", string(data))
}

func (r ReservationRef) MarshalJSON() ([]byte, error) {
	switch {
	case r.Reservation != nil:
		return json.Marshal(r.Reservation)
	case r.ID != "":
		return json.Marshal(r.ID)
	}
	return []byte("null"), nil
}

// ReservationID regresa el id sin importar la forma de la referencia.
func (r ReservationRef) ReservationID() string {
	if r.Reservation != nil {
		return r.Reservation.ID
	}
	return r.ID
}

// ReservationPayments resume los pagos de una reservación. TotalPaid y
// PendingBalance vienen calculados del backend.
type ReservationPayments struct {
	Payments       []Payment `json:"payments"`
	TotalPaid      float64   `json:"totalPaid"`
	PendingBalance float64   `json:"pendingBalance"`
}
