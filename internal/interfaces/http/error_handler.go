package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

// ErrorHandler traductor único de frontera: convierte errores de dominio y
// de transporte en el cuerpo uniforme {error: {message, status}, message}.
// Los handlers solo propagan errores; nunca mapean estatus por su cuenta.
//
//	domain.NotFoundError -> 404 con su mensaje
//	domain.ErrDuplicate  -> 409
//	*fiber.Error         -> su código (presence checks de los handlers)
//	resto                -> 500 genérico, detalle solo en el log
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var notFound *domain.NotFoundError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &notFound):
			status = fiber.StatusNotFound
			message = notFound.Message
		case errors.Is(err, domain.ErrDuplicate):
			status = fiber.StatusConflict
			message = err.Error()
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		}

		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no manejado")
		}

		return c.Status(status).JSON(dto.ErrorResponse{
			Error:   dto.ErrorDetail{Message: message, Status: status},
			Message: message,
		})
	}
}
