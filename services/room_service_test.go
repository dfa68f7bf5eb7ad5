package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteladmin/client"
	"hoteladmin/dto"
	"hoteladmin/models"
)

func TestEditFormRegresaAmenidadesComoCadena(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"_id": "r1", "number": "101", "type": "doble", "capacity": 2,
			"pricePerNight": 900, "amenities": ["WiFi", "TV", "Minibar"], "isAvailable": true}}`))
	}))
	defer server.Close()

	svc := NewRoomService(client.New(server.URL, server.Client()), newMemoryCache(), nil, nil)

	form, err := svc.EditForm(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "WiFi, TV, Minibar", form.Amenities, "mismo orden en que se capturaron")
	require.NotNil(t, form.IsAvailable)
	assert.True(t, *form.IsAvailable)
}

func TestCreateMandaAmenidadesComoLista(t *testing.T) {
	var sent dto.RoomPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"_id": "r1", "number": "101"}}`))
	}))
	defer server.Close()

	svc := NewRoomService(client.New(server.URL, server.Client()), newMemoryCache(), nil, nil)

	_, err := svc.Create(context.Background(), dto.RoomRequest{
		Number:        "101",
		Type:          "doble",
		Capacity:      2,
		PricePerNight: 900,
		Amenities:     "WiFi, TV, Minibar",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"WiFi", "TV", "Minibar"}, sent.Amenities)
	assert.True(t, sent.IsAvailable, "sin bandera explícita la habitación nace disponible")
}

func TestSetAvailabilityInvalidaSoloHabitaciones(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		w.Write([]byte(`{"data": {"_id": "r1", "number": "101", "isAvailable": false}}`))
	}))
	defer server.Close()

	cache := newMemoryCache()
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, roomsKeyPrefix+"all", []models.Room{}, ListTTL))
	require.NoError(t, cache.Set(ctx, reservationsKeyPrefix+"list:x", []models.Reservation{}, ListTTL))

	svc := NewRoomService(client.New(server.URL, server.Client()), cache, nil, nil)

	room, err := svc.SetAvailability(ctx, "r1", false)
	require.NoError(t, err)
	assert.False(t, room.IsAvailable)

	assert.False(t, cache.has(roomsKeyPrefix+"all"))
	assert.True(t, cache.has(reservationsKeyPrefix+"list:x"), "la disponibilidad manual no cruza con reservaciones")
}

func TestListCacheaYDetailCacheaAparte(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path == "/api/rooms" {
			w.Write([]byte(`{"data": [{"_id": "r1", "number": "101"}]}`))
			return
		}
		w.Write([]byte(`{"data": {"_id": "r1", "number": "101"}}`))
	}))
	defer server.Close()

	svc := NewRoomService(client.New(server.URL, server.Client()), newMemoryCache(), nil, nil)

	ctx := context.Background()
	_, err := svc.List(ctx)
	require.NoError(t, err)
	_, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	_, err = svc.Detail(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "el detalle tiene su propia llave")
}
