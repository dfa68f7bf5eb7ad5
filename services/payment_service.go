package services

import (
	"context"

	"hoteladmin/client"
	"hoteladmin/dto"
	"hoteladmin/errors"
	"hoteladmin/models"
	"hoteladmin/services/logger"
	"hoteladmin/validator"
)

// PaymentService expone las consultas y el registro de pagos. Registrar un
// pago invalida también el cache de reservaciones: el saldo pendiente que se
// muestra sale de ahí.
type PaymentService struct {
	api      *client.Client
	cache    Cache
	notifier *Notifier
	logger   logger.Logger
}

// NewPaymentService crea el servicio de pagos.
func NewPaymentService(api *client.Client, cache Cache, notifier *Notifier, log logger.Logger) *PaymentService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PaymentService{api: api, cache: cache, notifier: notifier, logger: log}
}

// List regresa los pagos filtrados, con cache por combinación de filtros.
func (s *PaymentService) List(ctx context.Context, filters dto.PaymentFilters) ([]models.Payment, error) {
	key := cacheKey(paymentsKeyPrefix+"list", filters)

	var payments []models.Payment
	if found, err := s.cache.Get(ctx, key, &payments); err == nil && found {
		return payments, nil
	}

	payments, err := s.api.Payments(ctx, filters)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, payments, ListTTL); err != nil {
		s.logger.Error("no se pudo guardar el listado de pagos: %v", err)
	}
	return payments, nil
}

// Detail regresa un pago por id, con cache de lectura.
func (s *PaymentService) Detail(ctx context.Context, id string) (*models.Payment, error) {
	key := paymentsKeyPrefix + "id:" + id

	var payment models.Payment
	if found, err := s.cache.Get(ctx, key, &payment); err == nil && found {
		return &payment, nil
	}

	fetched, err := s.api.Payment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, fetched, DetailTTL); err != nil {
		s.logger.Error("no se pudo guardar el detalle de pago: %v", err)
	}
	return fetched, nil
}

// ByReservation regresa los pagos de una reservación con los totales que
// calcula el backend.
func (s *PaymentService) ByReservation(ctx context.Context, reservationID string) (*models.ReservationPayments, error) {
	key := paymentsKeyPrefix + "reservation:" + reservationID

	var summary models.ReservationPayments
	if found, err := s.cache.Get(ctx, key, &summary); err == nil && found {
		return &summary, nil
	}

	fetched, err := s.api.PaymentsByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, fetched, ListTTL); err != nil {
		s.logger.Error("no se pudo guardar los pagos de la reservación: %v", err)
	}
	return fetched, nil
}

// Options regresa las reservaciones elegibles para recibir un pago: solo las
// que tienen saldo pendiente mayor a cero, con el monto prellenado al saldo
// completo.
func (s *PaymentService) Options(ctx context.Context) ([]dto.PaymentOption, error) {
	reservations, err := s.api.Reservations(ctx, dto.ReservationFilters{})
	if err != nil {
		return nil, err
	}

	options := make([]dto.PaymentOption, 0, len(reservations))
	for _, reservation := range reservations {
		if reservation.BalanceDue <= 0 {
			continue
		}
		options = append(options, dto.PaymentOption{
			ReservationID: reservation.ID,
			GuestName:     reservation.DisplayGuestName(),
			RoomNumber:    reservation.RoomNumber,
			TotalPrice:    reservation.TotalPrice,
			TotalPaid:     reservation.TotalPaid,
			BalanceDue:    reservation.BalanceDue,
			PrefillAmount: reservation.BalanceDue,
		})
	}
	return options, nil
}

// Create valida y registra un pago. Se rechaza si la reservación ya no tiene
// saldo pendiente: el saldo pudo cambiar desde que se armó el formulario.
func (s *PaymentService) Create(ctx context.Context, form dto.PaymentRequest) (*models.Payment, error) {
	if err := validator.ValidatePayment(&form); err != nil {
		return nil, err
	}

	reservation, err := s.api.Reservation(ctx, form.ReservationID)
	if err != nil {
		return nil, err
	}
	if reservation.BalanceDue <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeNoBalanceDue, "La reservación ya no tiene saldo pendiente", nil)
	}

	payment, err := s.api.CreatePayment(ctx, form)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return payment, nil
}

func (s *PaymentService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, paymentsKeyPrefix); err != nil {
		s.logger.Error("no se pudo invalidar el cache de pagos: %v", err)
	}
	if err := s.cache.DeletePrefix(ctx, reservationsKeyPrefix); err != nil {
		s.logger.Error("no se pudo invalidar el cache de reservaciones: %v", err)
	}
	s.notifier.Invalidate(EventPayments, EventReservations)
}
