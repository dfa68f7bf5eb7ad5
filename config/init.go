package config

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// App agrupa las piezas compartidas de la consola: el router, el websocket
// de invalidación, el planificador y el cliente de Redis.
type App struct {
	Router *gin.Engine
	Melody *melody.Melody
	Cron   *cron.Cron
	Redis  *redis.Client
}

// InitApp arma el router con CORS, conecta Redis y prepara websocket y cron.
func InitApp() (*App, error) {
	LoadEnv()

	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Session-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	rdb, err := ConnectRedis()
	if err != nil {
		return nil, fmt.Errorf("no se pudo conectar a Redis: %v", err)
	}

	return &App{
		Router: router,
		Melody: melody.New(),
		Cron:   cron.New(),
		Redis:  rdb,
	}, nil
}

// BackendURL regresa la URL base del API del hotel.
func BackendURL() string {
	return GetEnv("HOTEL_API_URL", "http://localhost:5000")
}

// BackendHTTPClient regresa el cliente HTTP hacia el API del hotel con el
// timeout configurado.
func BackendHTTPClient() *http.Client {
	timeout, err := time.ParseDuration(GetEnv("HOTEL_API_TIMEOUT", "10s"))
	if err != nil {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// InitWebSocket registra el endpoint de websocket para las invalidaciones.
func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
	log.Println("WebSocket inicializado")
}
