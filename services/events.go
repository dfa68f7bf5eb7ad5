package services

import (
	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Llaves de invalidación que se difunden a las consolas conectadas.
const (
	EventRooms        = "rooms"
	EventGuests       = "guests"
	EventReservations = "reservations"
	EventPayments     = "payments"
	EventReports      = "reports"
)

// Notifier difunde eventos de invalidación por websocket para que las
// consolas abiertas refresquen sus consultas después de una mutación.
type Notifier struct {
	m *melody.Melody
}

// NewNotifier crea el notificador sobre la instancia de melody.
func NewNotifier(m *melody.Melody) *Notifier {
	return &Notifier{m: m}
}

// InvalidationEvent es el mensaje que viaja a las consolas.
type InvalidationEvent struct {
	Type string   `json:"type"`
	Keys []string `json:"keys"`
}

// Invalidate difunde las llaves invalidadas. Es tolerante a nil para que los
// flujos sin websocket (tests, jobs) no lo tengan que distinguir.
func (n *Notifier) Invalidate(keys ...string) {
	if n == nil || n.m == nil || len(keys) == 0 {
		return
	}
	payload, err := json.Marshal(InvalidationEvent{Type: "invalidate", Keys: keys})
	if err != nil {
		return
	}
	n.m.Broadcast(payload)
}
