package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hoteladmin/client"
	"hoteladmin/dto"
	"hoteladmin/errors"
	"hoteladmin/models"
	"hoteladmin/services/logger"
)

const sessionKeyPrefix = "session:"

// AuthService es el único dueño del estado de sesión: guarda el token del
// backend y la última copia del usuario bajo un id de sesión propio, y lo
// tira completo cuando el backend contesta 401.
type AuthService struct {
	api    *client.Client
	cache  Cache
	logger logger.Logger
}

// NewAuthService crea el servicio de autenticación.
func NewAuthService(api *client.Client, cache Cache, log logger.Logger) *AuthService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AuthService{api: api, cache: cache, logger: log}
}

// Login autentica contra el backend y persiste la sesión resultante.
func (s *AuthService) Login(ctx context.Context, credentials dto.LoginRequest) (*models.Session, error) {
	auth, err := s.api.Login(ctx, credentials)
	if err != nil {
		return nil, err
	}
	return s.persistSession(ctx, auth)
}

// Register registra al administrador y persiste la sesión resultante.
func (s *AuthService) Register(ctx context.Context, payload dto.RegisterRequest) (*models.Session, error) {
	auth, err := s.api.Register(ctx, payload)
	if err != nil {
		return nil, err
	}
	return s.persistSession(ctx, auth)
}

// Session recupera la sesión por id. Una sesión ausente o vencida se reporta
// como sesión expirada para que la guardia conteste 401.
func (s *AuthService) Session(ctx context.Context, id string) (*models.Session, error) {
	if id == "" {
		return nil, errors.NewAppError(errors.ErrCodeMissingSession, "Sesión requerida", nil)
	}

	var session models.Session
	found, err := s.cache.Get(ctx, sessionKeyPrefix+id, &session)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeCacheError, "No se pudo leer la sesión", err)
	}
	if !found {
		return nil, errors.NewAppError(errors.ErrCodeSessionExpired, "Sesión expirada", errors.ErrSessionNotFound)
	}
	return &session, nil
}

// Profile consulta el perfil en el backend y refresca la copia guardada del
// usuario, igual que hacía el refresco de perfil de la consola original.
func (s *AuthService) Profile(ctx context.Context, session *models.Session) (*models.User, error) {
	user, err := s.api.Me(client.WithToken(ctx, session.Token))
	if err != nil {
		if errors.IsSessionExpired(err) {
			s.Teardown(ctx, session.ID)
		}
		return nil, err
	}

	session.User = *user
	if ttl := time.Until(session.ExpiresAt); ttl > 0 {
		if err := s.cache.Set(ctx, sessionKeyPrefix+session.ID, session, ttl); err != nil {
			s.logger.Error("no se pudo refrescar la sesión %s: %v", session.ID, err)
		}
	}
	return user, nil
}

// Logout elimina la sesión.
func (s *AuthService) Logout(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+id)
}

// Teardown tira la sesión tras un 401 del backend. Es el equivalente a
// limpiar las credenciales guardadas y mandar al login.
func (s *AuthService) Teardown(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if err := s.cache.Delete(ctx, sessionKeyPrefix+id); err != nil {
		s.logger.Error("no se pudo eliminar la sesión %s: %v", id, err)
	}
}

func (s *AuthService) persistSession(ctx context.Context, auth *models.AuthResponse) (*models.Session, error) {
	now := time.Now()
	session := &models.Session{
		ID:        uuid.NewString(),
		Token:     auth.Token,
		User:      auth.User,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}

	// El TTL de la sesión se acota a la expiración del token cuando se puede
	// leer; si no, se queda el tope de un día.
	if expiry, err := TokenExpiry(auth.Token); err == nil && expiry.After(now) && expiry.Before(session.ExpiresAt) {
		session.ExpiresAt = expiry
	}

	ttl := time.Until(session.ExpiresAt)
	if err := s.cache.Set(ctx, sessionKeyPrefix+session.ID, session, ttl); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeCacheError, "No se pudo guardar la sesión", err)
	}

	s.logger.Info("sesión iniciada para %s", auth.User.Email)
	return session, nil
}
