package client

import (
	"context"
	"net/http"

	"hoteladmin/dto"
	"hoteladmin/models"
)

// Register registra un administrador nuevo y regresa token y usuario.
func (c *Client) Register(ctx context.Context, payload dto.RegisterRequest) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.send(ctx, http.MethodPost, "/api/auth/register", payload, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Login autentica contra el backend y regresa token y usuario.
func (c *Client) Login(ctx context.Context, payload dto.LoginRequest) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.send(ctx, http.MethodPost, "/api/auth/login", payload, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Me regresa el perfil del administrador del token en contexto.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var envelope struct {
		User models.User `json:"user"`
	}
	if err := c.get(ctx, "/api/auth/me", nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.User, nil
}
