package constants

// Estados de una reservación. El backend los asigna y valida; la consola
// ofrece todos en el selector (queda pendiente de producto restringir las
// transiciones).
const (
	ReservationStatusPending    = "pending"
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked-in"
	ReservationStatusCheckedOut = "checked-out"
	ReservationStatusCancelled  = "cancelled"
	ReservationStatusCompleted  = "completed"
)

// ReservationStatuses lista los estados en su orden nominal.
var ReservationStatuses = []string{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCheckedIn,
	ReservationStatusCheckedOut,
	ReservationStatusCancelled,
	ReservationStatusCompleted,
}

// Tipos de habitación
const (
	RoomTypeIndividual = "individual"
	RoomTypeDoble      = "doble"
	RoomTypeSuite      = "suite"
	RoomTypeFamiliar   = "familiar"
)

var RoomTypes = []string{RoomTypeIndividual, RoomTypeDoble, RoomTypeSuite, RoomTypeFamiliar}

// Métodos de pago
const (
	PaymentMethodEfectivo = "efectivo"
	PaymentMethodDebito   = "tdd"
	PaymentMethodCredito  = "tdc"
)

var PaymentMethods = []string{PaymentMethodEfectivo, PaymentMethodDebito, PaymentMethodCredito}

// Tipos de documento de identidad
const (
	DocumentTypeINE       = "ine"
	DocumentTypePasaporte = "pasaporte"
	DocumentTypeLicencia  = "licencia"
	DocumentTypeOtro      = "otro"
)

var DocumentTypes = []string{DocumentTypeINE, DocumentTypePasaporte, DocumentTypeLicencia, DocumentTypeOtro}

// IsValidReservationStatus revisa si el estado pertenece al catálogo.
func IsValidReservationStatus(status string) bool {
	return contains(ReservationStatuses, status)
}

// IsValidRoomType revisa si el tipo de habitación pertenece al catálogo.
func IsValidRoomType(roomType string) bool {
	return contains(RoomTypes, roomType)
}

// IsValidPaymentMethod revisa si el método de pago pertenece al catálogo.
func IsValidPaymentMethod(method string) bool {
	return contains(PaymentMethods, method)
}

// IsValidDocumentType revisa si el tipo de documento pertenece al catálogo.
func IsValidDocumentType(documentType string) bool {
	return contains(DocumentTypes, documentType)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
