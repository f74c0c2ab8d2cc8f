package dto

// ErrorDetail detalle del error con el estatus HTTP que lo acompaña.
type ErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse cuerpo de error uniforme para todos los handlers:
// {error: {message, status}, message}. El mensaje se repite en el nivel
// superior por compatibilidad con clientes del API original.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Message string      `json:"message"`
}

// MessageResponse cuerpo de confirmación simple: {message: "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}
