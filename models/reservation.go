package models

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

// Reservation representa una reservación con su estado financiero derivado.
// TotalPaid y BalanceDue los calcula el backend; la consola nunca los
// recalcula para no divergir de la cifra autoritativa.
type Reservation struct {
	ID             string    `json:"_id"`
	Room           RoomRef   `json:"room,omitempty"`
	RoomNumber     int       `json:"roomNumber,omitempty"`
	Guest          GuestRef  `json:"guest,omitempty"`
	GuestName      string    `json:"guestName,omitempty"`
	GuestEmail     string    `json:"guestEmail,omitempty"`
	GuestPhone     string    `json:"guestPhone,omitempty"`
	CheckIn        string    `json:"checkIn"`
	CheckOut       string    `json:"checkOut"`
	Status         string    `json:"status"`
	TotalPrice     float64   `json:"totalPrice"`
	NumberOfGuests int       `json:"numberOfGuests,omitempty"`
	TotalPaid      float64   `json:"totalPaid"`
	BalanceDue     float64   `json:"balanceDue"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// RoomRef acepta las tres formas en que el API refiere una habitación:
// el documento embebido, el id como cadena o el número de habitación.
// Cualquier otra forma es un error de decodificación.
type RoomRef struct {
	Room   *Room
	ID     string
	Number int
}

func (r *RoomRef) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '{':
		var room Room
		if err := json.Unmarshal(data, &room); err != nil {
			return err
		}
		r.Room = &room
		return nil
	case '"':
		return json.Unmarshal(data, &r.ID)
	}
	if err := json.Unmarshal(data, &r.Number); err != nil {
		return fmt.Errorf("room reference has unexpected shape: %s", string(data))
	}
	return nil
}

func (r RoomRef) MarshalJSON() ([]byte, error) {
	switch {
	case r.Room != nil:
		return json.Marshal(r.Room)
	case r.ID != "":
		return json.Marshal(r.ID)
	case r.Number != 0:
		return json.Marshal(r.Number)
	}
	return []byte("null"), nil
}

// GuestRef acepta el huésped embebido o su id como cadena.
type GuestRef struct {
	Guest *Guest
	ID    string
}

func (g *GuestRef) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '{':
		var guest Guest
		if err := json.Unmarshal(data, &guest); err != nil {
			return err
		}
		g.Guest = &guest
		return nil
	case '"':
		return json.Unmarshal(data, &g.ID)
	}
	return fmt.Errorf("guest reference has unexpected shape: %s", string(data))
}

func (g GuestRef) MarshalJSON() ([]byte, error) {
	switch {
	case g.Guest != nil:
		return json.Marshal(g.Guest)
	case g.ID != "":
		return json.Marshal(g.ID)
	}
	return []byte("null"), nil
}

// GuestID regresa el id del huésped sin importar la forma de la referencia.
func (g GuestRef) GuestID() string {
	if g.Guest != nil {
		return g.Guest.ID
	}
	return g.ID
}

// DisplayGuestName regresa el nombre a mostrar para la reservación.
func (r Reservation) DisplayGuestName() string {
	if r.Guest.Guest != nil {
		return r.Guest.Guest.FullName()
	}
	return r.GuestName
}
