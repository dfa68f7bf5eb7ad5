package validator

import (
	"regexp"
	"strings"
	"time"

	"hoteladmin/constants"
	"hoteladmin/dto"
	"hoteladmin/errors"
)

// DateLayout es el formato de fecha que maneja el formulario.
const DateLayout = "2006-01-02"

// ValidateRoom valida el formulario de habitación
func ValidateRoom(room *dto.RoomRequest) error {
	number := strings.TrimSpace(room.Number)
	if number == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El número de habitación es obligatorio", nil)
	}
	if len(number) > 10 {
		return errors.NewAppError(errors.ErrCodeValidation, "El número de habitación no puede exceder 10 caracteres", nil)
	}
	room.Number = number

	if !constants.IsValidRoomType(room.Type) {
		return errors.NewAppError(errors.ErrCodeValidation, "Tipo de habitación inválido", nil)
	}

	if room.Capacity < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "La capacidad mínima es de una persona", nil)
	}
	if room.Capacity > 10 {
		return errors.NewAppError(errors.ErrCodeValidation, "La capacidad máxima permitida es de 10 personas", nil)
	}

	if room.PricePerNight < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "El precio por noche no puede ser negativo", nil)
	}
	if room.PricePerNight > 100000 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "El precio por noche es demasiado alto", nil)
	}

	if len(room.Amenities) > 300 {
		return errors.NewAppError(errors.ErrCodeValidation, "Las amenidades no pueden exceder 300 caracteres", nil)
	}
	if len(room.Description) > 500 {
		return errors.NewAppError(errors.ErrCodeValidation, "La descripción no puede exceder 500 caracteres", nil)
	}

	return nil
}

// ParseAmenities convierte la cadena separada por comas del formulario en la
// lista de amenidades, conservando el orden de captura.
func ParseAmenities(raw string) []string {
	parts := strings.Split(raw, ",")
	amenities := make([]string, 0, len(parts))
	for _, part := range parts {
		amenity := strings.TrimSpace(part)
		if amenity != "" {
			amenities = append(amenities, amenity)
		}
	}
	return amenities
}

// JoinAmenities regresa la lista de amenidades a la forma editable del
// formulario.
func JoinAmenities(amenities []string) string {
	return strings.Join(amenities, ", ")
}

// ValidateGuest valida el formulario de huésped
func ValidateGuest(guest *dto.GuestRequest) error {
	guest.FirstName = strings.TrimSpace(guest.FirstName)
	guest.LastName = strings.TrimSpace(guest.LastName)
	guest.Email = strings.TrimSpace(guest.Email)
	guest.Phone = strings.TrimSpace(guest.Phone)
	guest.DocumentNumber = strings.TrimSpace(guest.DocumentNumber)

	if len(guest.FirstName) < 2 {
		return errors.NewAppError(errors.ErrCodeValidation, "El nombre debe tener al menos 2 caracteres", nil)
	}
	if len(guest.FirstName) > 50 {
		return errors.NewAppError(errors.ErrCodeValidation, "El nombre no puede exceder 50 caracteres", nil)
	}
	if len(guest.LastName) < 2 {
		return errors.NewAppError(errors.ErrCodeValidation, "El apellido debe tener al menos 2 caracteres", nil)
	}
	if len(guest.LastName) > 50 {
		return errors.NewAppError(errors.ErrCodeValidation, "El apellido no puede exceder 50 caracteres", nil)
	}

	if !isValidEmail(guest.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Ingresa un correo válido", nil)
	}

	if len(guest.Phone) < 8 {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "El teléfono debe tener al menos 8 dígitos", nil)
	}
	if len(guest.Phone) > 20 {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "El teléfono no puede exceder 20 caracteres", nil)
	}

	if !constants.IsValidDocumentType(guest.DocumentType) {
		return errors.NewAppError(errors.ErrCodeValidation, "Tipo de documento inválido", nil)
	}
	if len(guest.DocumentNumber) < 4 {
		return errors.NewAppError(errors.ErrCodeValidation, "El número de documento debe tener al menos 4 caracteres", nil)
	}
	if len(guest.DocumentNumber) > 30 {
		return errors.NewAppError(errors.ErrCodeValidation, "El número de documento no puede exceder 30 caracteres", nil)
	}

	if len(guest.Notes) > 500 {
		return errors.NewAppError(errors.ErrCodeValidation, "Las notas no pueden exceder 500 caracteres", nil)
	}

	return nil
}

// ValidateReservation valida el formulario de creación de reservación y
// resuelve la exclusividad huésped existente / huésped nuevo: el modo decide
// cuál referencia se conserva y la otra se descarta.
func ValidateReservation(reservation *dto.ReservationRequest) error {
	if reservation.RoomNumber <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "La habitación debe ser un número entero positivo", nil)
	}

	if err := ValidateDateRange(reservation.CheckIn, reservation.CheckOut); err != nil {
		return err
	}

	if reservation.NumberOfGuests != 0 {
		if reservation.NumberOfGuests < 1 {
			return errors.NewAppError(errors.ErrCodeValidation, "Al menos un huésped", nil)
		}
		if reservation.NumberOfGuests > 10 {
			return errors.NewAppError(errors.ErrCodeValidation, "Máximo 10 huéspedes", nil)
		}
	}

	reservation.Notes = strings.TrimSpace(reservation.Notes)
	if len(reservation.Notes) > 500 {
		return errors.NewAppError(errors.ErrCodeValidation, "Las notas no pueden exceder 500 caracteres", nil)
	}

	if reservation.Mode == "" {
		reservation.Mode = dto.GuestModeExisting
	}

	switch reservation.Mode {
	case dto.GuestModeExisting:
		reservation.GuestID = strings.TrimSpace(reservation.GuestID)
		if reservation.GuestID == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Selecciona un huésped existente", nil)
		}
		// Se descartan los datos en línea capturados antes de cambiar de modo
		reservation.Guest = nil
	case dto.GuestModeNew:
		if reservation.Guest == nil {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Completa los datos del nuevo huésped", nil)
		}
		if err := validateInlineGuest(reservation.Guest); err != nil {
			return err
		}
		reservation.GuestID = ""
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Modo de huésped inválido", nil)
	}

	return nil
}

// ValidateReservationUpdate valida la edición de una reservación
func ValidateReservationUpdate(reservation *dto.ReservationUpdateRequest) error {
	if reservation.RoomNumber <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "La habitación debe ser un número entero positivo", nil)
	}

	if err := ValidateDateRange(reservation.CheckIn, reservation.CheckOut); err != nil {
		return err
	}

	if reservation.NumberOfGuests != 0 {
		if reservation.NumberOfGuests < 1 {
			return errors.NewAppError(errors.ErrCodeValidation, "Al menos un huésped", nil)
		}
		if reservation.NumberOfGuests > 10 {
			return errors.NewAppError(errors.ErrCodeValidation, "Máximo 10 huéspedes", nil)
		}
	}

	reservation.Notes = strings.TrimSpace(reservation.Notes)
	if len(reservation.Notes) > 500 {
		return errors.NewAppError(errors.ErrCodeValidation, "Las notas no pueden exceder 500 caracteres", nil)
	}

	return nil
}

// ValidatePayment valida el formulario de pago
func ValidatePayment(payment *dto.PaymentRequest) error {
	payment.ReservationID = strings.TrimSpace(payment.ReservationID)
	if payment.ReservationID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Selecciona una reservación", nil)
	}

	if payment.Amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "El monto debe ser mayor a 0", nil)
	}
	if payment.Amount > 1000000 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "El monto no puede exceder 1,000,000", nil)
	}

	if !constants.IsValidPaymentMethod(payment.Method) {
		return errors.NewAppError(errors.ErrCodeValidation, "Selecciona un método de pago válido", nil)
	}

	payment.Notes = strings.TrimSpace(payment.Notes)
	if len(payment.Notes) > 500 {
		return errors.NewAppError(errors.ErrCodeValidation, "Las notas no pueden exceder 500 caracteres", nil)
	}

	return nil
}

// ValidateStatus valida el estado solicitado en el PATCH de estado. Cualquier
// transición entre estados del catálogo se permite; el backend es quien
// decide si la rechaza.
func ValidateStatus(status string) error {
	if !constants.IsValidReservationStatus(status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Estado de reservación inválido", nil)
	}
	return nil
}

// CapacityHint regresa una advertencia no bloqueante cuando el número de
// huéspedes excede la capacidad de la habitación seleccionada.
func CapacityHint(numberOfGuests, capacity int) string {
	if capacity > 0 && numberOfGuests > capacity {
		return "El número de huéspedes excede la capacidad de la habitación"
	}
	return ""
}

// ValidateDateRange exige un rango con salida estrictamente posterior al
// check-in, en formato de fecha plana.
func ValidateDateRange(checkIn, checkOut string) error {
	if strings.TrimSpace(checkIn) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "La fecha de check-in es obligatoria", nil)
	}
	if strings.TrimSpace(checkOut) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "La fecha de check-out es obligatoria", nil)
	}

	checkInDate, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Fecha de check-in inválida", err)
	}

	checkOutDate, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Fecha de check-out inválida", err)
	}

	if !checkOutDate.After(checkInDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "La salida debe ser posterior al check-in", nil)
	}

	return nil
}

func validateInlineGuest(guest *dto.ReservationGuestPayload) error {
	guest.FirstName = strings.TrimSpace(guest.FirstName)
	guest.LastName = strings.TrimSpace(guest.LastName)
	guest.Email = strings.TrimSpace(guest.Email)
	guest.Phone = strings.TrimSpace(guest.Phone)

	if guest.FirstName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ingresa el nombre", nil)
	}
	if guest.LastName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ingresa el apellido", nil)
	}
	if !isValidEmail(guest.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Correo inválido", nil)
	}
	if len(guest.Phone) < 7 {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Teléfono inválido", nil)
	}
	if guest.DocumentType != "" && !constants.IsValidDocumentType(guest.DocumentType) {
		return errors.NewAppError(errors.ErrCodeValidation, "Tipo de documento inválido", nil)
	}
	if len(guest.DocumentNumber) > 50 {
		return errors.NewAppError(errors.ErrCodeValidation, "Máximo 50 caracteres", nil)
	}
	if len(guest.Notes) > 300 {
		return errors.NewAppError(errors.ErrCodeValidation, "Las notas no pueden exceder 300 caracteres", nil)
	}

	return nil
}

// isValidEmail revisa que el correo sea válido
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
