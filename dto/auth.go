package dto

// LoginRequest son las credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest es el formulario de registro de administrador.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

// ReportQuery selecciona el mes del reporte.
type ReportQuery struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}
