package backoffice

// Usuario модель пользователя из backoffice
type Usuario struct {
	ID       int64   `json:"id"`
	Nombre   string  `json:"nombre"`
	Apellido string  `json:"apellido"`
	Email    string  `json:"email"`
	Legajo   string  `json:"legajo"`
	Saldo    float64 `json:"saldo"`
	Activo   bool    `json:"activo"`
}

// ErrorResponse модель ошибки от backoffice
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
