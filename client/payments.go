package client

import (
	"context"
	"net/http"
	"net/url"

	"hoteladmin/dto"
	"hoteladmin/models"
)

// Payments regresa los pagos con los filtros dados.
func (c *Client) Payments(ctx context.Context, filters dto.PaymentFilters) ([]models.Payment, error) {
	query := url.Values{}
	if filters.ReservationID != "" {
		query.Set("reservationId", filters.ReservationID)
	}
	if filters.GuestID != "" {
		query.Set("guestId", filters.GuestID)
	}
	if filters.Method != "" {
		query.Set("method", filters.Method)
	}
	if filters.StartDate != "" {
		query.Set("startDate", filters.StartDate)
	}
	if filters.EndDate != "" {
		query.Set("endDate", filters.EndDate)
	}

	var payments []models.Payment
	if err := c.get(ctx, "/api/payments", query, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Payment regresa el detalle de un pago.
func (c *Client) Payment(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	if err := c.get(ctx, "/api/payments/"+url.PathEscape(id), nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// PaymentsByReservation regresa los pagos de una reservación junto con los
// totales calculados por el backend.
func (c *Client) PaymentsByReservation(ctx context.Context, reservationID string) (*models.ReservationPayments, error) {
	var summary models.ReservationPayments
	if err := c.get(ctx, "/api/payments/reservation/"+url.PathEscape(reservationID), nil, &summary); err != nil {
		return nil, err
	}
	if summary.Payments == nil {
		summary.Payments = []models.Payment{}
	}
	return &summary, nil
}

// CreatePayment registra un pago.
func (c *Client) CreatePayment(ctx context.Context, payload dto.PaymentRequest) (*models.Payment, error) {
	var payment models.Payment
	if err := c.send(ctx, http.MethodPost, "/api/payments", payload, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
