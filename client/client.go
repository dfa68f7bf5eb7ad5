package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	"hoteladmin/errors"
)

// Client envuelve las llamadas HTTP al API del hotel. No guarda credenciales:
// el token de la sesión viaja en el contexto de cada petición y se adjunta
// como bearer cuando está presente.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New crea un cliente del API del hotel.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// BaseURL regresa la URL base configurada.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type tokenKey struct{}

// WithToken adjunta el token de sesión al contexto de la petición.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext recupera el token de sesión del contexto, si existe.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// do ejecuta la petición y regresa el cuerpo crudo. Un 401 del backend se
// convierte en error de sesión expirada para que la capa de guardia tire la
// sesión; cualquier otro no-2xx se reduce a un mensaje plano tomado del campo
// `message` del cuerpo, o del texto del estado HTTP.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "No se pudo serializar la petición", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUnreachable, "No se pudo crear la petición", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUnreachable, "No se pudo contactar el API del hotel", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUnreachable, "No se pudo leer la respuesta", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errors.NewAppError(errors.ErrCodeSessionExpired, "No autorizado", nil)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.NewAppError(errors.ErrCodeAPINotFound, apiMessage(data, resp.StatusCode), nil)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewAppError(errors.ErrCodeAPIError, apiMessage(data, resp.StatusCode), nil)
	}

	return data, nil
}

// get ejecuta un GET y decodifica el resultado desenvolviendo el sobre.
func (c *Client) get(ctx context.Context, path string, query url.Values, target interface{}) error {
	data, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return unwrap(data, target)
}

// send ejecuta una mutación y decodifica el resultado si hay destino.
func (c *Client) send(ctx context.Context, method, path string, payload, target interface{}) error {
	data, err := c.do(ctx, method, path, nil, payload)
	if err != nil {
		return err
	}
	if target == nil || len(data) == 0 {
		return nil
	}
	return unwrap(data, target)
}

// apiMessage extrae el mensaje plano de un error del backend.
func apiMessage(body []byte, statusCode int) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return fmt.Sprintf("Solicitud fallida (%d)", statusCode)
}
