package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteladmin/dto"
	"hoteladmin/errors"
)

func TestDoAdjuntaBearerDelContexto(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	api := New(server.URL, server.Client())
	ctx := WithToken(context.Background(), "tok-123")

	_, err := api.Rooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestDoSinTokenNoMandaBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	api := New(server.URL, server.Client())

	_, err := api.Rooms(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestDo401SeVuelveSesionExpirada(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	api := New(server.URL, server.Client())

	_, err := api.Rooms(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsSessionExpired(err))
}

func TestDoExtraeMensajeDelBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "La habitación ya existe"}`))
	}))
	defer server.Close()

	api := New(server.URL, server.Client())

	_, err := api.CreateRoom(context.Background(), dto.RoomPayload{Number: "101"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeAPIError, appErr.Code)
	assert.Equal(t, "La habitación ya existe", appErr.Message)
}

func TestDoMensajeCaeAlTextoHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`no soy json`))
	}))
	defer server.Close()

	api := New(server.URL, server.Client())

	_, err := api.Rooms(context.Background())
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Internal Server Error", appErr.Message)
}

func TestGuestsNormalizaSobreEspecial(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"guests": [{"id": "g1", "firstName": "Ana"}], "count": 7, "totalPages": 3}`))
	}))
	defer server.Close()

	api := New(server.URL, server.Client())

	list, err := api.Guests(context.Background(), dto.GuestListFilters{Page: 2, Limit: 10})
	require.NoError(t, err)
	require.Len(t, list.Guests, 1)
	assert.Equal(t, "g1", list.Guests[0].ID)
	assert.Equal(t, 7, list.Total)
	assert.Equal(t, 3, list.Pages)
}

func TestGuestsSinNadaRegresaListaVacia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	api := New(server.URL, server.Client())

	list, err := api.Guests(context.Background(), dto.GuestListFilters{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, list.Guests)
	assert.Empty(t, list.Guests)
}
