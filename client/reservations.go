package client

import (
	"context"
	"net/http"
	"net/url"

	"hoteladmin/dto"
	"hoteladmin/models"
)

// Reservations regresa las reservaciones con los filtros dados.
func (c *Client) Reservations(ctx context.Context, filters dto.ReservationFilters) ([]models.Reservation, error) {
	query := url.Values{}
	if filters.Status != "" {
		query.Set("status", filters.Status)
	}
	if filters.RoomID != "" {
		query.Set("roomId", filters.RoomID)
	}
	if filters.GuestEmail != "" {
		query.Set("guestEmail", filters.GuestEmail)
	}
	if filters.StartDate != "" {
		query.Set("startDate", filters.StartDate)
	}
	if filters.EndDate != "" {
		query.Set("endDate", filters.EndDate)
	}

	var reservations []models.Reservation
	if err := c.get(ctx, "/api/reservations", query, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// Reservation regresa el detalle de una reservación.
func (c *Client) Reservation(ctx context.Context, id string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := c.get(ctx, "/api/reservations/"+url.PathEscape(id), nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// AvailableRooms regresa habitaciones libres y ocupadas para el rango.
func (c *Client) AvailableRooms(ctx context.Context, checkIn, checkOut string) (*models.RoomAvailability, error) {
	query := url.Values{}
	query.Set("checkIn", checkIn)
	query.Set("checkOut", checkOut)

	var availability models.RoomAvailability
	if err := c.get(ctx, "/api/reservations/rooms/available", query, &availability); err != nil {
		return nil, err
	}
	return &availability, nil
}

// RoomsOverview regresa el resumen operativo de todas las habitaciones.
func (c *Client) RoomsOverview(ctx context.Context) ([]models.RoomOverview, error) {
	var overview []models.RoomOverview
	if err := c.get(ctx, "/api/reservations/rooms/overview", nil, &overview); err != nil {
		return nil, err
	}
	return overview, nil
}

// ReservationsByRoom regresa las reservaciones de una habitación por número.
func (c *Client) ReservationsByRoom(ctx context.Context, roomNumber string, futureOnly bool) ([]models.Reservation, error) {
	query := url.Values{}
	if futureOnly {
		query.Set("futureOnly", "true")
	}

	var reservations []models.Reservation
	path := "/api/reservations/rooms/" + url.PathEscape(roomNumber) + "/reservations"
	if err := c.get(ctx, path, query, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// CreateReservation crea una reservación. El precio total lo calcula el
// backend; la consola muestra lo que regrese.
func (c *Client) CreateReservation(ctx context.Context, payload dto.ReservationPayload) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := c.send(ctx, http.MethodPost, "/api/reservations", payload, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateReservation actualiza fechas y detalles de una reservación.
func (c *Client) UpdateReservation(ctx context.Context, id string, payload dto.ReservationUpdateRequest) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := c.send(ctx, http.MethodPut, "/api/reservations/"+url.PathEscape(id), payload, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateReservationStatus cambia el estado de la reservación vía PATCH.
func (c *Client) UpdateReservationStatus(ctx context.Context, id, status string) (*models.Reservation, error) {
	payload := map[string]string{"status": status}
	var reservation models.Reservation
	if err := c.send(ctx, http.MethodPatch, "/api/reservations/"+url.PathEscape(id)+"/status", payload, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}
