package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteladmin/client"
)

func reportBackend(calls *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		year := r.URL.Query().Get("year")
		month := r.URL.Query().Get("month")
		fmt.Fprintf(w, `{"data": {"year": %s, "month": %s, "occupancyRate": 72.5, "totalIncome": 58000}}`, year, month)
	}))
}

func TestMonthlySinPeriodoUsaElMesEnCurso(t *testing.T) {
	calls := 0
	server := reportBackend(&calls)
	defer server.Close()

	svc := NewReportService(client.New(server.URL, server.Client()), newMemoryCache(), nil)

	report, err := svc.Monthly(context.Background(), 0, 0)
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, now.Year(), report.Year)
	assert.Equal(t, int(now.Month()), report.Month)
}

func TestMonthlyCacheaPorPeriodo(t *testing.T) {
	calls := 0
	server := reportBackend(&calls)
	defer server.Close()

	svc := NewReportService(client.New(server.URL, server.Client()), newMemoryCache(), nil)

	ctx := context.Background()
	_, err := svc.Monthly(ctx, 2026, 7)
	require.NoError(t, err)
	_, err = svc.Monthly(ctx, 2026, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	_, err = svc.Monthly(ctx, 2026, 8)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "otro mes es otra llave")
}

func TestMonthlyMesInvalido(t *testing.T) {
	svc := NewReportService(client.New("http://localhost:0", nil), newMemoryCache(), nil)

	_, err := svc.Monthly(context.Background(), 2026, 13)
	require.Error(t, err)

	_, err = svc.Monthly(context.Background(), 1815, 1)
	require.Error(t, err)
}

func TestWarmCurrentLlenaElCache(t *testing.T) {
	calls := 0
	server := reportBackend(&calls)
	defer server.Close()

	cache := newMemoryCache()
	svc := NewReportService(client.New(server.URL, server.Client()), cache, nil)

	ctx := context.Background()
	require.NoError(t, svc.WarmCurrent(ctx))
	require.Equal(t, 1, calls)

	// La consulta siguiente sale del cache precalentado
	_, err := svc.Monthly(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
