package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	List(ctx context.Context) ([]*entity.Company, error)
	// GetByCode devuelve (nil, nil) si la empresa no existe.
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	// IndustryNames devuelve los nombres de los sectores asociados a la
	// empresa; slice vacío (no nil con nulls) si no tiene asociaciones.
	IndustryNames(ctx context.Context, code string) ([]string, error)
	// Create devuelve domain.ErrDuplicate si el código ya existe.
	Create(ctx context.Context, company *entity.Company) error
	// Update devuelve domain.ErrCompanyNotFound si no afecta ninguna fila.
	Update(ctx context.Context, company *entity.Company) error
	// Delete devuelve domain.ErrCompanyNotFound si no afecta ninguna fila.
	Delete(ctx context.Context, code string) error
}
