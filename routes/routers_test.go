package routes

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteladmin/client"
	"hoteladmin/dto"
	"hoteladmin/middleware"
	"hoteladmin/response"
	"hoteladmin/services"
	"hoteladmin/validator"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string, target interface{}) (bool, error) {
	c.mu.Lock()
	data, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, target)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[key] = data
	c.mu.Unlock()
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.mu.Unlock()
	return nil
}

func (c *fakeCache) DeletePrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
	return nil
}

func backendToken() string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, time.Now().Add(time.Hour).Unix())))
	return header + "." + payload + ".firma"
}

// hotelBackend simula el API del hotel con los endpoints que tocan los tests.
func hotelBackend(t *testing.T, token string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/auth/login":
			fmt.Fprintf(w, `{"data": {"token": %q, "user": {"id": "u1", "email": "admin@hotel.mx"}}}`, token)
		case r.URL.Path == "/api/rooms" && r.Method == http.MethodGet:
			if r.Header.Get("Authorization") != "Bearer "+token {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"data": [{"_id": "r1", "number": "101", "type": "doble", "capacity": 2}]}`))
		case strings.HasPrefix(r.URL.Path, "/api/reservations/") && r.Method == http.MethodGet:
			w.Write([]byte(`{"data": {"_id": "res1", "totalPrice": 1000, "totalPaid": 1000, "balanceDue": 0}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "No encontrado"}`))
		}
	}))
}

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.RegisterBindingValidators()

	token := backendToken()
	backend := hotelBackend(t, token)
	t.Cleanup(backend.Close)

	api := client.New(backend.URL, backend.Client())
	cache := newFakeCache()

	auth := services.NewAuthService(api, cache, nil)
	svc := Services{
		Auth:         auth,
		Rooms:        services.NewRoomService(api, cache, nil, nil),
		Guests:       services.NewGuestService(api, cache, nil, nil),
		Reservations: services.NewReservationService(api, cache, nil, nil),
		Payments:     services.NewPaymentService(api, cache, nil, nil),
		Reports:      services.NewReportService(api, cache, nil),
	}

	router := gin.New()
	SetupRoutes(router, svc)

	session, err := auth.Login(context.Background(), dto.LoginRequest{Email: "admin@hotel.mx", Password: "secreta"})
	require.NoError(t, err)

	return router, session.ID
}

func TestRutasProtegidasExigenSesion(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginYConsultaDeHabitaciones(t *testing.T) {
	router, sessionID := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	req.Header.Set(middleware.SessionHeader, sessionID)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Code)
	assert.Equal(t, "Éxito", envelope.Mess)
	assert.NotNil(t, envelope.Data)
}

func TestLoginEntregaSesionSinToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"email": "admin@hotel.mx", "password": "secreta"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sessionId")
	assert.NotContains(t, w.Body.String(), `"token"`, "el token del backend no debe salir al navegador")
}

func TestPagoContraReservacionSaldada(t *testing.T) {
	router, sessionID := newTestRouter(t)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"reservationId": "res1", "amount": 100, "method": "efectivo"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, sessionID)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "saldo")
}

func TestRecursoInexistenteRegresa404(t *testing.T) {
	router, sessionID := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/guests/no-existe", nil)
	req.Header.Set(middleware.SessionHeader, sessionID)
	router.ServeHTTP(w, req)

	// El backend contesta 404; la consola lo traduce a su propio sobre
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPingSinSesion(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}
