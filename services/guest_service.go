package services

import (
	"context"

	"hoteladmin/client"
	"hoteladmin/dto"
	"hoteladmin/models"
	"hoteladmin/services/logger"
)

// GuestService expone las consultas y mutaciones de huéspedes.
type GuestService struct {
	api      *client.Client
	cache    Cache
	notifier *Notifier
	logger   logger.Logger
}

// NewGuestService crea el servicio de huéspedes.
func NewGuestService(api *client.Client, cache Cache, notifier *Notifier, log logger.Logger) *GuestService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &GuestService{api: api, cache: cache, notifier: notifier, logger: log}
}

// List regresa el listado paginado de huéspedes, con cache por filtros.
func (s *GuestService) List(ctx context.Context, filters dto.GuestListFilters) (*models.GuestList, error) {
	key := cacheKey(guestsKeyPrefix+"list", filters)

	var list models.GuestList
	if found, err := s.cache.Get(ctx, key, &list); err == nil && found {
		return &list, nil
	}

	fetched, err := s.api.Guests(ctx, filters)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, fetched, ListTTL); err != nil {
		s.logger.Error("no se pudo guardar el listado de huéspedes: %v", err)
	}
	return fetched, nil
}

// Detail regresa un huésped por id, con cache de lectura.
func (s *GuestService) Detail(ctx context.Context, id string) (*models.Guest, error) {
	key := guestsKeyPrefix + "id:" + id

	var guest models.Guest
	if found, err := s.cache.Get(ctx, key, &guest); err == nil && found {
		return &guest, nil
	}

	fetched, err := s.api.Guest(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, fetched, DetailTTL); err != nil {
		s.logger.Error("no se pudo guardar el detalle de huésped: %v", err)
	}
	return fetched, nil
}

// Create da de alta un huésped y desecha el cache de huéspedes.
func (s *GuestService) Create(ctx context.Context, form dto.GuestRequest) (*models.Guest, error) {
	guest, err := s.api.CreateGuest(ctx, form)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return guest, nil
}

// Update actualiza un huésped y desecha el cache de huéspedes.
func (s *GuestService) Update(ctx context.Context, id string, form dto.GuestRequest) (*models.Guest, error) {
	guest, err := s.api.UpdateGuest(ctx, id, form)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return guest, nil
}

// Delete elimina un huésped y desecha el cache de huéspedes.
func (s *GuestService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteGuest(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *GuestService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, guestsKeyPrefix); err != nil {
		s.logger.Error("no se pudo invalidar el cache de huéspedes: %v", err)
	}
	s.notifier.Invalidate(EventGuests)
}
