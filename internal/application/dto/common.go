package dto

// SuccessResponse envuelve toda respuesta exitosa de la API.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse envuelve toda respuesta de error. Detail solo se rellena
// en errores 500 y nunca expone internos más allá del mensaje.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

// OK construye la envoltura de éxito.
func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// Fail construye la envoltura de error.
func Fail(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}
