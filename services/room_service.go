package services

import (
	"context"

	"hoteladmin/client"
	"hoteladmin/dto"
	"hoteladmin/models"
	"hoteladmin/services/logger"
	"hoteladmin/validator"
)

// Llaves de cache por entidad; las mutaciones invalidan por prefijo.
const (
	roomsKeyPrefix        = "rooms:"
	guestsKeyPrefix       = "guests:"
	reservationsKeyPrefix = "reservations:"
	paymentsKeyPrefix     = "payments:"
	reportsKeyPrefix      = "reports:"
)

// RoomService expone las consultas y mutaciones de habitaciones con cache de
// lectura e invalidación declarativa.
type RoomService struct {
	api      *client.Client
	cache    Cache
	notifier *Notifier
	logger   logger.Logger
}

// NewRoomService crea el servicio de habitaciones.
func NewRoomService(api *client.Client, cache Cache, notifier *Notifier, log logger.Logger) *RoomService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RoomService{api: api, cache: cache, notifier: notifier, logger: log}
}

// List regresa todas las habitaciones, con cache de lectura.
func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	key := roomsKeyPrefix + "all"

	var rooms []models.Room
	if found, err := s.cache.Get(ctx, key, &rooms); err == nil && found {
		return rooms, nil
	} else if err != nil {
		s.logger.Error("cache de habitaciones ilegible: %v", err)
	}

	rooms, err := s.api.Rooms(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, rooms, ListTTL); err != nil {
		s.logger.Error("no se pudo guardar el cache de habitaciones: %v", err)
	}
	return rooms, nil
}

// Detail regresa una habitación por id, con cache de lectura.
func (s *RoomService) Detail(ctx context.Context, id string) (*models.Room, error) {
	key := roomsKeyPrefix + "id:" + id

	var room models.Room
	if found, err := s.cache.Get(ctx, key, &room); err == nil && found {
		return &room, nil
	}

	fetched, err := s.api.Room(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, fetched, DetailTTL); err != nil {
		s.logger.Error("no se pudo guardar el detalle de habitación: %v", err)
	}
	return fetched, nil
}

// Search busca habitaciones; cada combinación de filtros es su propia llave.
func (s *RoomService) Search(ctx context.Context, filters dto.RoomSearchFilters) ([]models.Room, error) {
	key := cacheKey(roomsKeyPrefix+"search", filters)

	var rooms []models.Room
	if found, err := s.cache.Get(ctx, key, &rooms); err == nil && found {
		return rooms, nil
	}

	rooms, err := s.api.SearchRooms(ctx, filters)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, rooms, ListTTL); err != nil {
		s.logger.Error("no se pudo guardar la búsqueda de habitaciones: %v", err)
	}
	return rooms, nil
}

// Create da de alta la habitación y desecha el cache de habitaciones.
func (s *RoomService) Create(ctx context.Context, form dto.RoomRequest) (*models.Room, error) {
	room, err := s.api.CreateRoom(ctx, roomPayload(form))
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return room, nil
}

// Update actualiza la habitación y desecha el cache de habitaciones.
func (s *RoomService) Update(ctx context.Context, id string, form dto.RoomRequest) (*models.Room, error) {
	room, err := s.api.UpdateRoom(ctx, id, roomPayload(form))
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return room, nil
}

// SetAvailability cambia la bandera manual de disponibilidad. No se cruza
// con el estado de reservaciones: una habitación puede quedar no disponible
// con reservaciones activas encima.
func (s *RoomService) SetAvailability(ctx context.Context, id string, available bool) (*models.Room, error) {
	room, err := s.api.UpdateRoomAvailability(ctx, id, available)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return room, nil
}

// Delete elimina la habitación y desecha el cache de habitaciones.
func (s *RoomService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteRoom(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// EditForm regresa la habitación en su forma editable, con las amenidades de
// vuelta como cadena separada por comas y en el mismo orden.
func (s *RoomService) EditForm(ctx context.Context, id string) (*dto.RoomRequest, error) {
	room, err := s.Detail(ctx, id)
	if err != nil {
		return nil, err
	}

	available := room.IsAvailable
	return &dto.RoomRequest{
		Number:        room.Number,
		Type:          room.Type,
		Capacity:      room.Capacity,
		PricePerNight: room.PricePerNight,
		Amenities:     validator.JoinAmenities(room.Amenities),
		IsAvailable:   &available,
		Description:   room.Description,
	}, nil
}

func (s *RoomService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, roomsKeyPrefix); err != nil {
		s.logger.Error("no se pudo invalidar el cache de habitaciones: %v", err)
	}
	s.notifier.Invalidate(EventRooms)
}

func roomPayload(form dto.RoomRequest) dto.RoomPayload {
	available := true
	if form.IsAvailable != nil {
		available = *form.IsAvailable
	}
	return dto.RoomPayload{
		Number:        form.Number,
		Type:          form.Type,
		Capacity:      form.Capacity,
		PricePerNight: form.PricePerNight,
		Amenities:     validator.ParseAmenities(form.Amenities),
		IsAvailable:   available,
		Description:   form.Description,
	}
}
