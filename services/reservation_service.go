package services

import (
	"context"
	"strconv"

	"hoteladmin/client"
	"hoteladmin/dto"
	"hoteladmin/models"
	"hoteladmin/services/logger"
	"hoteladmin/validator"
)

// ReservationService expone las consultas y mutaciones de reservaciones.
// Las mutaciones invalidan también el cache de habitaciones: una reservación
// nueva cambia la disponibilidad mostrada en el tablero.
type ReservationService struct {
	api      *client.Client
	cache    Cache
	notifier *Notifier
	logger   logger.Logger
}

// NewReservationService crea el servicio de reservaciones.
func NewReservationService(api *client.Client, cache Cache, notifier *Notifier, log logger.Logger) *ReservationService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReservationService{api: api, cache: cache, notifier: notifier, logger: log}
}

// List regresa las reservaciones filtradas, con cache por combinación de
// filtros.
func (s *ReservationService) List(ctx context.Context, filters dto.ReservationFilters) ([]models.Reservation, error) {
	key := cacheKey(reservationsKeyPrefix+"list", filters)

	var reservations []models.Reservation
	if found, err := s.cache.Get(ctx, key, &reservations); err == nil && found {
		return reservations, nil
	}

	reservations, err := s.api.Reservations(ctx, filters)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, reservations, ListTTL); err != nil {
		s.logger.Error("no se pudo guardar el listado de reservaciones: %v", err)
	}
	return reservations, nil
}

// Detail regresa una reservación por id, con cache de lectura.
func (s *ReservationService) Detail(ctx context.Context, id string) (*models.Reservation, error) {
	key := reservationsKeyPrefix + "id:" + id

	var reservation models.Reservation
	if found, err := s.cache.Get(ctx, key, &reservation); err == nil && found {
		return &reservation, nil
	}

	fetched, err := s.api.Reservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, fetched, DetailTTL); err != nil {
		s.logger.Error("no se pudo guardar el detalle de reservación: %v", err)
	}
	return fetched, nil
}

// AvailableRooms regresa habitaciones libres y ocupadas para el rango dado.
func (s *ReservationService) AvailableRooms(ctx context.Context, query dto.AvailableRoomsQuery) (*models.RoomAvailability, error) {
	if err := validator.ValidateDateRange(query.CheckIn, query.CheckOut); err != nil {
		return nil, err
	}

	key := cacheKey(reservationsKeyPrefix+"available", query)

	var availability models.RoomAvailability
	if found, err := s.cache.Get(ctx, key, &availability); err == nil && found {
		return &availability, nil
	}

	fetched, err := s.api.AvailableRooms(ctx, query.CheckIn, query.CheckOut)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, fetched, ListTTL); err != nil {
		s.logger.Error("no se pudo guardar la disponibilidad: %v", err)
	}
	return fetched, nil
}

// RoomsOverview regresa el resumen operativo por habitación para el tablero.
func (s *ReservationService) RoomsOverview(ctx context.Context) ([]models.RoomOverview, error) {
	key := reservationsKeyPrefix + "overview"

	var overview []models.RoomOverview
	if found, err := s.cache.Get(ctx, key, &overview); err == nil && found {
		return overview, nil
	}

	overview, err := s.api.RoomsOverview(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, overview, ListTTL); err != nil {
		s.logger.Error("no se pudo guardar el resumen de habitaciones: %v", err)
	}
	return overview, nil
}

// WarmOverview refresca el resumen operativo directo del backend. Lo usa el
// job nocturno para que el tablero amanezca al día.
func (s *ReservationService) WarmOverview(ctx context.Context) error {
	overview, err := s.api.RoomsOverview(ctx)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, reservationsKeyPrefix+"overview", overview, ListTTL)
}

// ByRoom regresa las reservaciones de una habitación. El calendario de la
// habitación solo necesita las futuras.
func (s *ReservationService) ByRoom(ctx context.Context, roomNumber string, futureOnly bool) ([]models.Reservation, error) {
	key := reservationsKeyPrefix + "room:" + roomNumber + ":" + strconv.FormatBool(futureOnly)

	var reservations []models.Reservation
	if found, err := s.cache.Get(ctx, key, &reservations); err == nil && found {
		return reservations, nil
	}

	reservations, err := s.api.ReservationsByRoom(ctx, roomNumber, futureOnly)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, reservations, ListTTL); err != nil {
		s.logger.Error("no se pudo guardar las reservaciones de la habitación: %v", err)
	}
	return reservations, nil
}

// Create valida el formulario, arma el cuerpo según el modo de huésped y
// crea la reservación. Regresa además la advertencia de capacidad, que no
// bloquea la operación. El precio total lo calcula el backend.
func (s *ReservationService) Create(ctx context.Context, form dto.ReservationRequest) (*models.Reservation, string, error) {
	if err := validator.ValidateReservation(&form); err != nil {
		return nil, "", err
	}

	hint := s.capacityHint(ctx, form.RoomNumber, form.NumberOfGuests)

	reservation, err := s.api.CreateReservation(ctx, dto.ReservationPayload{
		RoomNumber:     form.RoomNumber,
		CheckIn:        form.CheckIn,
		CheckOut:       form.CheckOut,
		NumberOfGuests: form.NumberOfGuests,
		Notes:          form.Notes,
		GuestID:        form.GuestID,
		Guest:          form.Guest,
	})
	if err != nil {
		return nil, "", err
	}

	s.invalidate(ctx)
	return reservation, hint, nil
}

// Update valida y actualiza fechas y detalles de la reservación.
func (s *ReservationService) Update(ctx context.Context, id string, form dto.ReservationUpdateRequest) (*models.Reservation, error) {
	if err := validator.ValidateReservationUpdate(&form); err != nil {
		return nil, err
	}

	reservation, err := s.api.UpdateReservation(ctx, id, form)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return reservation, nil
}

// UpdateStatus cambia el estado de la reservación de forma optimista: el
// detalle en cache se actualiza antes de llamar al backend y se restaura si
// la llamada falla. Cualquier transición entre estados del catálogo se
// acepta; el backend es quien tiene la última palabra.
func (s *ReservationService) UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error) {
	if err := validator.ValidateStatus(status); err != nil {
		return nil, err
	}

	key := reservationsKeyPrefix + "id:" + id

	var previous models.Reservation
	hadPrevious := false
	if found, err := s.cache.Get(ctx, key, &previous); err == nil && found {
		hadPrevious = true
		optimistic := previous
		optimistic.Status = status
		if err := s.cache.Set(ctx, key, optimistic, DetailTTL); err != nil {
			s.logger.Error("no se pudo aplicar el estado optimista: %v", err)
		}
	}

	reservation, err := s.api.UpdateReservationStatus(ctx, id, status)
	if err != nil {
		if hadPrevious {
			if cacheErr := s.cache.Set(ctx, key, previous, DetailTTL); cacheErr != nil {
				s.logger.Error("no se pudo restaurar el detalle de reservación: %v", cacheErr)
			}
		} else if cacheErr := s.cache.Delete(ctx, key); cacheErr != nil {
			s.logger.Error("no se pudo desechar el detalle de reservación: %v", cacheErr)
		}
		return nil, err
	}

	s.invalidate(ctx)
	return reservation, nil
}

// capacityHint busca la habitación en el cache de habitaciones para comparar
// la capacidad. Si el listado no está disponible no bloquea la creación.
func (s *ReservationService) capacityHint(ctx context.Context, roomNumber, numberOfGuests int) string {
	var rooms []models.Room
	found, err := s.cache.Get(ctx, roomsKeyPrefix+"all", &rooms)
	if err != nil || !found {
		rooms, err = s.api.Rooms(ctx)
		if err != nil {
			s.logger.Error("no se pudo consultar la capacidad de la habitación: %v", err)
			return ""
		}
	}

	number := strconv.Itoa(roomNumber)
	for _, room := range rooms {
		if room.Number == number {
			return validator.CapacityHint(numberOfGuests, room.Capacity)
		}
	}
	return ""
}

func (s *ReservationService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, reservationsKeyPrefix); err != nil {
		s.logger.Error("no se pudo invalidar el cache de reservaciones: %v", err)
	}
	if err := s.cache.DeletePrefix(ctx, roomsKeyPrefix); err != nil {
		s.logger.Error("no se pudo invalidar el cache de habitaciones: %v", err)
	}
	s.notifier.Invalidate(EventReservations, EventRooms)
}
