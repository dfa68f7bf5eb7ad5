package models

import "time"

// User es el administrador autenticado contra el API del hotel.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse es la respuesta de login/registro del backend.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Session es el estado de sesión que la consola guarda por administrador:
// el token emitido por el backend y la última copia conocida del usuario.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
