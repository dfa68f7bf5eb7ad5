package controllers

import (
	"github.com/gin-gonic/gin"

	"hoteladmin/errors"
	"hoteladmin/middleware"
	"hoteladmin/response"
	"hoteladmin/services"
)

// respondError traduce un error de servicio a la respuesta HTTP. Si el
// backend contestó 401, la sesión almacenada ya no sirve: se desecha aquí
// mismo para que la consola vuelva a la pantalla de inicio de sesión.
func respondError(c *gin.Context, auth *services.AuthService, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeSessionExpired, errors.ErrCodeUnauthorized, errors.ErrCodeMissingSession, errors.ErrCodeInvalidToken:
		teardownSession(c, auth)
		response.SessionExpired(c)
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidEmail, errors.ErrCodeInvalidPhone, errors.ErrCodeInvalidAmount,
		errors.ErrCodeInvalidStatus, errors.ErrCodeInvalidDate:
		response.ValidationError(c, appErr.Message)
	case errors.ErrCodeNoBalanceDue, errors.ErrCodeInvalidOperation:
		response.BadRequest(c, appErr.Message)
	case errors.ErrCodeAPINotFound:
		response.NotFound(c)
	case errors.ErrCodeAPIError, errors.ErrCodeAPIDecode, errors.ErrCodeUnreachable:
		response.UpstreamError(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}

func teardownSession(c *gin.Context, auth *services.AuthService) {
	if auth == nil {
		return
	}
	if sessionID := c.GetHeader(middleware.SessionHeader); sessionID != "" {
		auth.Teardown(c.Request.Context(), sessionID)
	}
}
