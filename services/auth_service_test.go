package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteladmin/client"
	"hoteladmin/dto"
	"hoteladmin/errors"
)

// testToken arma un JWT sin firma real con la expiración dada. Al backend
// nadie le pide verificarlo aquí; solo importa el payload.
func testToken(exp time.Time) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d,"sub":"u1"}`, exp.Unix())))
	return header + "." + payload + ".firma"
}

func authBackend(t *testing.T, token string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login", "/api/auth/register":
			fmt.Fprintf(w, `{"data": {"token": %q, "user": {"id": "u1", "email": "admin@hotel.mx"}}}`, token)
		case "/api/auth/me":
			if r.Header.Get("Authorization") != "Bearer "+token {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"data": {"user": {"id": "u1", "email": "admin@hotel.mx", "firstName": "Admin"}}}`))
		default:
			t.Errorf("ruta inesperada: %s", r.URL.Path)
		}
	}))
}

func TestLoginPersisteSesionRecuperable(t *testing.T) {
	token := testToken(time.Now().Add(48 * time.Hour))
	server := authBackend(t, token)
	defer server.Close()

	svc := NewAuthService(client.New(server.URL, server.Client()), newMemoryCache(), nil)

	session, err := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@hotel.mx", Password: "secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, token, session.Token)
	assert.Equal(t, "admin@hotel.mx", session.User.Email)

	loaded, err := svc.Session(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.Token, loaded.Token)
}

func TestLoginAcotaExpiracionAlToken(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour)
	server := authBackend(t, testToken(exp))
	defer server.Close()

	svc := NewAuthService(client.New(server.URL, server.Client()), newMemoryCache(), nil)

	session, err := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@hotel.mx", Password: "secreta"})
	require.NoError(t, err)
	assert.WithinDuration(t, exp, session.ExpiresAt, time.Second, "el token vence antes que el tope de un día")
}

func TestLoginTokenIlegibleUsaElTope(t *testing.T) {
	server := authBackend(t, "no-es-un-jwt")
	defer server.Close()

	svc := NewAuthService(client.New(server.URL, server.Client()), newMemoryCache(), nil)

	session, err := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@hotel.mx", Password: "secreta"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(SessionTTL), session.ExpiresAt, time.Minute)
}

func TestSessionAusenteEsExpirada(t *testing.T) {
	svc := NewAuthService(client.New("http://localhost:0", nil), newMemoryCache(), nil)

	_, err := svc.Session(context.Background(), "no-existe")
	require.Error(t, err)
	assert.True(t, errors.IsSessionExpired(err))
}

func TestSessionSinIDEsSesionRequerida(t *testing.T) {
	svc := NewAuthService(client.New("http://localhost:0", nil), newMemoryCache(), nil)

	_, err := svc.Session(context.Background(), "")
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeMissingSession, appErr.Code)
}

func TestLogoutEliminaLaSesion(t *testing.T) {
	server := authBackend(t, testToken(time.Now().Add(time.Hour)))
	defer server.Close()

	cache := newMemoryCache()
	svc := NewAuthService(client.New(server.URL, server.Client()), cache, nil)

	session, err := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@hotel.mx", Password: "secreta"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.ID))

	_, err = svc.Session(context.Background(), session.ID)
	require.Error(t, err)
}

func TestProfileCon401TiraLaSesion(t *testing.T) {
	token := testToken(time.Now().Add(time.Hour))
	server := authBackend(t, token)
	defer server.Close()

	cache := newMemoryCache()
	svc := NewAuthService(client.New(server.URL, server.Client()), cache, nil)

	session, err := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@hotel.mx", Password: "secreta"})
	require.NoError(t, err)

	// Simula un token revocado en el backend
	session.Token = "Bearer-invalido"

	_, err = svc.Profile(context.Background(), session)
	require.Error(t, err)
	assert.True(t, errors.IsSessionExpired(err))

	_, err = svc.Session(context.Background(), session.ID)
	require.Error(t, err, "la sesión debe quedar eliminada tras el 401")
}

func TestProfileRefrescaElUsuarioGuardado(t *testing.T) {
	token := testToken(time.Now().Add(time.Hour))
	server := authBackend(t, token)
	defer server.Close()

	svc := NewAuthService(client.New(server.URL, server.Client()), newMemoryCache(), nil)

	session, err := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@hotel.mx", Password: "secreta"})
	require.NoError(t, err)

	user, err := svc.Profile(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.FirstName)

	loaded, err := svc.Session(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Admin", loaded.User.FirstName)
}
