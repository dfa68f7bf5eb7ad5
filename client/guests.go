package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	json "github.com/goccy/go-json"

	"hoteladmin/dto"
	"hoteladmin/errors"
	"hoteladmin/models"
)

// Guests regresa el listado paginado de huéspedes. Este endpoint trae su
// propio sobre con variantes por versión del backend: guests/results para la
// lista, total/count y pages/totalPages para los contadores.
func (c *Client) Guests(ctx context.Context, filters dto.GuestListFilters) (*models.GuestList, error) {
	query := url.Values{}
	if filters.Page > 0 {
		query.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.Limit > 0 {
		query.Set("limit", strconv.Itoa(filters.Limit))
	}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}
	if filters.DocumentType != "" {
		query.Set("documentType", filters.DocumentType)
	}

	data, err := c.do(ctx, http.MethodGet, "/api/guests", query, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Guests     []models.Guest `json:"guests"`
		Results    []models.Guest `json:"results"`
		Total      int            `json:"total"`
		Count      int            `json:"count"`
		Page       int            `json:"page"`
		Pages      int            `json:"pages"`
		TotalPages int            `json:"totalPages"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeAPIDecode, "Respuesta inesperada del listado de huéspedes", err)
	}

	list := &models.GuestList{
		Guests: envelope.Guests,
		Total:  envelope.Total,
		Page:   envelope.Page,
		Pages:  envelope.Pages,
	}
	if list.Guests == nil {
		list.Guests = envelope.Results
	}
	if list.Guests == nil {
		list.Guests = []models.Guest{}
	}
	if list.Total == 0 {
		list.Total = envelope.Count
	}
	if list.Page == 0 {
		list.Page = 1
	}
	if list.Pages == 0 {
		list.Pages = envelope.TotalPages
	}
	if list.Pages == 0 {
		list.Pages = 1
	}
	return list, nil
}

// Guest regresa el detalle de un huésped.
func (c *Client) Guest(ctx context.Context, id string) (*models.Guest, error) {
	var guest models.Guest
	if err := c.get(ctx, "/api/guests/"+url.PathEscape(id), nil, &guest); err != nil {
		return nil, err
	}
	return &guest, nil
}

// CreateGuest da de alta un huésped.
func (c *Client) CreateGuest(ctx context.Context, payload dto.GuestRequest) (*models.Guest, error) {
	var guest models.Guest
	if err := c.send(ctx, http.MethodPost, "/api/guests", payload, &guest); err != nil {
		return nil, err
	}
	return &guest, nil
}

// UpdateGuest actualiza un huésped.
func (c *Client) UpdateGuest(ctx context.Context, id string, payload dto.GuestRequest) (*models.Guest, error) {
	var guest models.Guest
	if err := c.send(ctx, http.MethodPut, "/api/guests/"+url.PathEscape(id), payload, &guest); err != nil {
		return nil, err
	}
	return &guest, nil
}

// DeleteGuest elimina un huésped.
func (c *Client) DeleteGuest(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/guests/"+url.PathEscape(id), nil, nil)
}
