package controllers

import (
	"github.com/gin-gonic/gin"

	"hoteladmin/dto"
	"hoteladmin/response"
	"hoteladmin/services"
)

// PaymentController expone la consulta y el registro de pagos.
type PaymentController struct {
	payments *services.PaymentService
	auth     *services.AuthService
}

// NewPaymentController crea el controlador de pagos.
func NewPaymentController(payments *services.PaymentService, auth *services.AuthService) *PaymentController {
	return &PaymentController{payments: payments, auth: auth}
}

// List regresa los pagos filtrados.
func (ctl *PaymentController) List(c *gin.Context) {
	var filters dto.PaymentFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "Filtros de pagos inválidos")
		return
	}

	payments, err := ctl.payments.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, payments)
}

// Options regresa las reservaciones con saldo pendiente, listas para el
// formulario de pago con el monto prellenado.
func (ctl *PaymentController) Options(c *gin.Context) {
	options, err := ctl.payments.Options(c.Request.Context())
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, options)
}

// Detail regresa un pago por id.
func (ctl *PaymentController) Detail(c *gin.Context) {
	payment, err := ctl.payments.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, payment)
}

// ByReservation regresa los pagos de una reservación con sus totales.
func (ctl *PaymentController) ByReservation(c *gin.Context) {
	summary, err := ctl.payments.ByReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Success(c, summary)
}

// Create registra un pago contra una reservación con saldo pendiente.
func (ctl *PaymentController) Create(c *gin.Context) {
	var form dto.PaymentRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		response.ValidationError(c, "Formulario de pago inválido")
		return
	}

	payment, err := ctl.payments.Create(c.Request.Context(), form)
	if err != nil {
		respondError(c, ctl.auth, err)
		return
	}
	response.Created(c, payment)
}
