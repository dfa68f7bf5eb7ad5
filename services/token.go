package services

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	json "github.com/goccy/go-json"

	"hoteladmin/errors"
)

// TokenExpiry saca la expiración del token emitido por el backend. La
// consola no verifica la firma: el backend es quien firma y valida; aquí
// solo se decodifica el payload para acotar el TTL de la sesión.
func TokenExpiry(tokenString string) (time.Time, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token inválido", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidToken, "No se pudo decodificar el token", err)
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidToken, "No se pudo leer el token", err)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidToken, "El token no trae expiración", nil)
	}

	return time.Unix(int64(exp), 0), nil
}
