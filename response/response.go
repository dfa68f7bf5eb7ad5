package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response define la estructura de respuesta de la consola
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination define la estructura de paginación
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success regresa una respuesta exitosa
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Éxito",
		Data: data,
	})
}

// Created regresa una respuesta de recurso creado
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Éxito",
		Data: data,
	})
}

// SuccessWithPagination regresa una respuesta exitosa con paginación
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Éxito",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Error regresa una respuesta de error
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

// ServerError regresa una respuesta de error del servidor
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Error del servidor",
	})
}

// Unauthorized regresa una respuesta de no autenticado
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "No autorizado",
	})
}

// SessionExpired regresa 401 indicando que la sesión fue cerrada
func SessionExpired(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Sesión expirada, inicia sesión de nuevo",
	})
}

// NotFound regresa una respuesta de no encontrado
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "No encontrado",
	})
}

// ValidationError regresa una respuesta de error de validación
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// BadRequest regresa una respuesta de solicitud inválida
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// UpstreamError regresa una respuesta de error del API del hotel
func UpstreamError(c *gin.Context, message string) {
	if message == "" {
		message = "Solicitud fallida"
	}
	c.JSON(http.StatusBadGateway, Response{
		Code: 0,
		Mess: message,
	})
}

// NoContent regresa una respuesta vacía
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
