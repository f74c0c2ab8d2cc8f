package domain

import "errors"

// NotFoundError señala que un recurso (o un referente de un join) no existe.
// El mensaje es el que ve el cliente en la respuesta 404; el traductor de
// frontera (interfaces/http) es el único que lo convierte en estatus HTTP.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// Errores de dominio (sin dependencias externas).
var (
	ErrCompanyNotFound  = &NotFoundError{Message: "Company Not Found"}
	ErrInvoiceNotFound  = &NotFoundError{Message: "Invoice Not Found"}
	ErrIndustryNotFound = &NotFoundError{Message: "Industry Not Found"}

	// ErrDuplicate: violación de constraint único (código de empresa o
	// industria ya existente, asociación repetida con constraint en BD).
	ErrDuplicate = errors.New("resource already exists")
)

// IsNotFound informa si err (o su cadena) es un NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
