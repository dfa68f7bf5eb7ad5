package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv nada las variables del archivo `.env`; si no existe se usan las
// variables del sistema.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No se pudo cargar .env, se usan las variables del sistema")
	}
}

// GetEnv regresa la variable de entorno o el valor por defecto.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
