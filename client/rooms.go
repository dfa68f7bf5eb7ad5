package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"hoteladmin/dto"
	"hoteladmin/models"
)

// Rooms regresa todas las habitaciones.
func (c *Client) Rooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.get(ctx, "/api/rooms", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Room regresa el detalle de una habitación.
func (c *Client) Room(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	if err := c.get(ctx, "/api/rooms/"+url.PathEscape(id), nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// SearchRooms busca habitaciones con los filtros dados.
func (c *Client) SearchRooms(ctx context.Context, filters dto.RoomSearchFilters) ([]models.Room, error) {
	query := url.Values{}
	if filters.Type != "" {
		query.Set("type", filters.Type)
	}
	if filters.MinCapacity > 0 {
		query.Set("minCapacity", strconv.Itoa(filters.MinCapacity))
	}
	if filters.MaxPrice > 0 {
		query.Set("maxPrice", strconv.FormatFloat(filters.MaxPrice, 'f', -1, 64))
	}
	if filters.Available != nil {
		query.Set("available", strconv.FormatBool(*filters.Available))
	}

	var rooms []models.Room
	if err := c.get(ctx, "/api/rooms/search", query, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoom da de alta una habitación.
func (c *Client) CreateRoom(ctx context.Context, payload dto.RoomPayload) (*models.Room, error) {
	var room models.Room
	if err := c.send(ctx, http.MethodPost, "/api/rooms", payload, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// UpdateRoom actualiza una habitación.
func (c *Client) UpdateRoom(ctx context.Context, id string, payload dto.RoomPayload) (*models.Room, error) {
	var room models.Room
	if err := c.send(ctx, http.MethodPut, "/api/rooms/"+url.PathEscape(id), payload, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// UpdateRoomAvailability cambia la bandera manual de disponibilidad. Es
// independiente del estado de las reservaciones; no se cruza con ellas.
func (c *Client) UpdateRoomAvailability(ctx context.Context, id string, available bool) (*models.Room, error) {
	payload := map[string]bool{"isAvailable": available}
	var room models.Room
	if err := c.send(ctx, http.MethodPatch, "/api/rooms/"+url.PathEscape(id)+"/availability", payload, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// DeleteRoom elimina una habitación.
func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/rooms/"+url.PathEscape(id), nil, nil)
}
