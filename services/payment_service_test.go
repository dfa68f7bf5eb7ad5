package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteladmin/client"
	"hoteladmin/dto"
	"hoteladmin/errors"
	"hoteladmin/models"
)

func TestOptionsSoloReservacionesConSaldo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"_id": "res1", "roomNumber": 101, "guestName": "Ana Luna", "totalPrice": 1000, "totalPaid": 400, "balanceDue": 600},
			{"_id": "res2", "roomNumber": 202, "guestName": "Carlos Paz", "totalPrice": 800, "totalPaid": 800, "balanceDue": 0}
		]}`))
	}))
	defer server.Close()

	svc := NewPaymentService(client.New(server.URL, server.Client()), newMemoryCache(), nil, nil)

	options, err := svc.Options(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 1, "la reservación saldada no es elegible")

	option := options[0]
	assert.Equal(t, "res1", option.ReservationID)
	assert.Equal(t, "Ana Luna", option.GuestName)
	assert.Equal(t, 600.0, option.BalanceDue)
	assert.Equal(t, 600.0, option.PrefillAmount, "el monto se prellenara con el saldo completo")
}

func TestCreateRechazaReservacionSaldada(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"_id": "res2", "totalPrice": 800, "totalPaid": 800, "balanceDue": 0}}`))
	}))
	defer server.Close()

	svc := NewPaymentService(client.New(server.URL, server.Client()), newMemoryCache(), nil, nil)

	_, err := svc.Create(context.Background(), dto.PaymentRequest{
		ReservationID: "res2",
		Amount:        100,
		Method:        "efectivo",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeNoBalanceDue, appErr.Code)
}

func TestCreateInvalidaPagosYReservaciones(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"data": {"_id": "res1", "totalPrice": 1000, "totalPaid": 400, "balanceDue": 600}}`))
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/api/payments") {
			t.Errorf("ruta inesperada: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"_id": "pay1", "amount": 600, "method": "efectivo"}}`))
	}))
	defer server.Close()

	cache := newMemoryCache()
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, paymentsKeyPrefix+"list:x", []models.Payment{}, ListTTL))
	require.NoError(t, cache.Set(ctx, reservationsKeyPrefix+"id:res1", models.Reservation{ID: "res1"}, DetailTTL))
	require.NoError(t, cache.Set(ctx, roomsKeyPrefix+"all", []models.Room{}, ListTTL))

	svc := NewPaymentService(client.New(server.URL, server.Client()), cache, nil, nil)

	payment, err := svc.Create(ctx, dto.PaymentRequest{
		ReservationID: "res1",
		Amount:        600,
		Method:        "efectivo",
	})
	require.NoError(t, err)
	assert.Equal(t, "pay1", payment.ID)
	assert.Equal(t, 600.0, payment.Amount)

	assert.False(t, cache.has(paymentsKeyPrefix+"list:x"))
	assert.False(t, cache.has(reservationsKeyPrefix+"id:res1"), "el saldo mostrado sale de reservaciones")
	assert.True(t, cache.has(roomsKeyPrefix+"all"), "las habitaciones no se tocan")
}

func TestCreateMontoInvalidoNoLlamaAlBackend(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := NewPaymentService(client.New(server.URL, server.Client()), newMemoryCache(), nil, nil)

	_, err := svc.Create(context.Background(), dto.PaymentRequest{
		ReservationID: "res1",
		Amount:        -5,
		Method:        "efectivo",
	})
	require.Error(t, err)
	assert.False(t, called)
}

func TestByReservationCachea(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"payments": null, "totalPaid": 400, "pendingBalance": 600}`))
	}))
	defer server.Close()

	svc := NewPaymentService(client.New(server.URL, server.Client()), newMemoryCache(), nil, nil)

	ctx := context.Background()
	summary, err := svc.ByReservation(ctx, "res1")
	require.NoError(t, err)
	assert.NotNil(t, summary.Payments, "sin pagos debe regresar lista vacía")
	assert.Equal(t, 600.0, summary.PendingBalance)

	_, err = svc.ByReservation(ctx, "res1")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
