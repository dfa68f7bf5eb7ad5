package middleware

import (
	"github.com/gin-gonic/gin"

	"hoteladmin/client"
	"hoteladmin/errors"
	"hoteladmin/models"
	"hoteladmin/response"
	"hoteladmin/services"
)

// SessionHeader es el encabezado que identifica la sesión de la consola.
const SessionHeader = "X-Session-ID"

const sessionContextKey = "session"

// RequireSession carga la sesión del encabezado y deja el token del backend
// en el contexto de la petición. Sin sesión válida no pasa nada más abajo:
// la sesión expirada se desecha y el cliente debe volver a iniciar sesión.
func RequireSession(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		session, err := auth.Session(c.Request.Context(), sessionID)
		if err != nil {
			if errors.IsSessionExpired(err) {
				response.SessionExpired(c)
			} else {
				response.Unauthorized(c)
			}
			c.Abort()
			return
		}

		c.Set(sessionContextKey, session)
		c.Request = c.Request.WithContext(client.WithToken(c.Request.Context(), session.Token))
		c.Next()
	}
}

// SessionFromContext regresa la sesión que dejó RequireSession.
func SessionFromContext(c *gin.Context) (*models.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*models.Session)
	return session, ok
}
