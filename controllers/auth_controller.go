package controllers

import (
	"github.com/gin-gonic/gin"

	"hoteladmin/dto"
	"hoteladmin/middleware"
	"hoteladmin/models"
	"hoteladmin/response"
	"hoteladmin/services"
)

// AuthController expone inicio y cierre de sesión de la consola.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController crea el controlador de sesión.
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// sessionView es lo que la consola conoce de su sesión. El token del backend
// nunca sale del servidor.
type sessionView struct {
	SessionID string      `json:"sessionId"`
	User      models.User `json:"user"`
	ExpiresAt string      `json:"expiresAt"`
}

func newSessionView(session *models.Session) sessionView {
	return sessionView{
		SessionID: session.ID,
		User:      session.User,
		ExpiresAt: session.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Login inicia sesión contra el backend y crea la sesión de consola.
func (ctl *AuthController) Login(c *gin.Context) {
	var form dto.LoginRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		response.ValidationError(c, "Correo y contraseña son obligatorios")
		return
	}

	session, err := ctl.auth.Login(c.Request.Context(), form)
	if err != nil {
		respondError(c, nil, err)
		return
	}

	response.Success(c, newSessionView(session))
}

// Register da de alta un usuario administrador y abre sesión de inmediato.
func (ctl *AuthController) Register(c *gin.Context) {
	var form dto.RegisterRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		response.ValidationError(c, "Nombre, correo y contraseña son obligatorios")
		return
	}

	session, err := ctl.auth.Register(c.Request.Context(), form)
	if err != nil {
		respondError(c, nil, err)
		return
	}

	response.Created(c, newSessionView(session))
}

// Me regresa el perfil del usuario de la sesión, revalidado con el backend.
func (ctl *AuthController) Me(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	user, err := ctl.auth.Profile(c.Request.Context(), session)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}

	response.Success(c, user)
}

// Logout cierra la sesión de la consola.
func (ctl *AuthController) Logout(c *gin.Context) {
	sessionID := c.GetHeader(middleware.SessionHeader)
	if sessionID == "" {
		response.Unauthorized(c)
		return
	}

	if err := ctl.auth.Logout(c.Request.Context(), sessionID); err != nil {
		respondError(c, nil, err)
		return
	}

	response.NoContent(c)
}
