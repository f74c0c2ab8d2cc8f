package usecase

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// TxRunner puerto para ejecutar un callback con repositorios atados a una
// misma transacción. Lo usan los casos de uso que encadenan lectura y
// escritura (actualización de factura, asociación empresa—sector) para que
// el par no se entrelace con peticiones concurrentes.
// La implementación vive en infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		invoices repository.InvoiceRepository,
		industries repository.IndustryRepository,
	) error) error
}
