package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// IndustryRepository define el puerto de persistencia para Industry y su
// asociación N—M con Company.
type IndustryRepository interface {
	List(ctx context.Context) ([]*entity.Industry, error)
	// GetByCode devuelve (nil, nil) si el sector no existe.
	GetByCode(ctx context.Context, code string) (*entity.Industry, error)
	// CompanyNames devuelve los nombres de las empresas asociadas al sector;
	// slice vacío si no tiene asociaciones.
	CompanyNames(ctx context.Context, code string) ([]string, error)
	// Create devuelve domain.ErrDuplicate si el código ya existe.
	Create(ctx context.Context, industry *entity.Industry) error
	// Associate inserta la fila de asociación. No valida existencia de los
	// referentes; eso lo hace el caso de uso dentro de la transacción.
	Associate(ctx context.Context, compCode, indCode string) error
}
