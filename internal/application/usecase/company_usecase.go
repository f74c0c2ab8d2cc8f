package usecase

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/jhoicas/biztime-api/pkg/slug"
)

// CompanyUseCase aplica las reglas de negocio para empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List devuelve todas las empresas. Nunca falla por conjunto vacío.
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	companies := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		companies = append(companies, entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Companies: companies}, nil
}

// GetByCode devuelve la empresa con la lista de nombres de sus sectores.
// Sin asociaciones la lista va vacía, nunca [null].
func (uc *CompanyUseCase) GetByCode(ctx context.Context, code string) (*dto.CompanyDetailResponse, error) {
	company, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	industries, err := uc.repo.IndustryNames(ctx, code)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyDetailResponse{
		CompanyResponse: entityToCompanyResponse(company),
		Industries:      industries,
	}, nil
}

// Create crea una empresa derivando el código del nombre (slug sin
// separadores). Dos nombres que colisionen en el mismo código producen
// domain.ErrDuplicate en el segundo intento; no hay sufijos de desambiguación.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.Company{
		Code:        slug.Make(in.Name),
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	out := entityToCompanyResponse(company)
	return &out, nil
}

// Update actualiza nombre y descripción; el código es inmutable.
func (uc *CompanyUseCase) Update(ctx context.Context, code string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	out := entityToCompanyResponse(company)
	return &out, nil
}

// Delete elimina la empresa. Las facturas dependientes las elimina la BD
// (ON DELETE CASCADE); aquí solo se chequea que la fila existiera.
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) error {
	return uc.repo.Delete(ctx, code)
}

func entityToCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}
