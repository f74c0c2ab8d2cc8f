package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// IndustryUseCase aplica las reglas de negocio para sectores y su asociación
// con empresas.
type IndustryUseCase struct {
	repo repository.IndustryRepository
	tx   TxRunner
}

// NewIndustryUseCase construye el caso de uso.
func NewIndustryUseCase(repo repository.IndustryRepository, tx TxRunner) *IndustryUseCase {
	return &IndustryUseCase{repo: repo, tx: tx}
}

// List devuelve todos los sectores tal cual están persistidos.
func (uc *IndustryUseCase) List(ctx context.Context) (*dto.IndustryListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	industries := make([]dto.IndustryResponse, 0, len(list))
	for _, ind := range list {
		industries = append(industries, entityToIndustryResponse(ind))
	}
	return &dto.IndustryListResponse{Industries: industries}, nil
}

// GetByCode devuelve el sector con los nombres de sus empresas asociadas.
// Sin asociaciones la lista va vacía, nunca [null].
func (uc *IndustryUseCase) GetByCode(ctx context.Context, code string) (*dto.IndustryDetailResponse, error) {
	industry, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if industry == nil {
		return nil, domain.ErrIndustryNotFound
	}
	companies, err := uc.repo.CompanyNames(ctx, code)
	if err != nil {
		return nil, err
	}
	return &dto.IndustryDetailResponse{
		IndustryResponse: entityToIndustryResponse(industry),
		Companies:        companies,
	}, nil
}

// Create inserta un sector nuevo con el código recibido tal cual.
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.CreateIndustryRequest) (*dto.IndustryResponse, error) {
	industry := &entity.Industry{Code: in.Code, Industry: in.Industry}
	if err := uc.repo.Create(ctx, industry); err != nil {
		return nil, err
	}
	out := entityToIndustryResponse(industry)
	return &out, nil
}

// Associate asocia una empresa a un sector. Las dos sondas de existencia y
// el insert corren en una sola transacción; si cualquiera falla no se inserta
// nada. Devuelve el mensaje de confirmación "<empresa> added to <sector>.".
func (uc *IndustryUseCase) Associate(ctx context.Context, indCode string, in dto.AssociateIndustryRequest) (*dto.MessageResponse, error) {
	var message string
	err := uc.tx.Run(ctx, func(
		companies repository.CompanyRepository,
		_ repository.InvoiceRepository,
		industries repository.IndustryRepository,
	) error {
		industry, err := industries.GetByCode(ctx, indCode)
		if err != nil {
			return err
		}
		if industry == nil {
			return domain.ErrIndustryNotFound
		}
		company, err := companies.GetByCode(ctx, in.CompCode)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrCompanyNotFound
		}
		if err := industries.Associate(ctx, company.Code, industry.Code); err != nil {
			return err
		}
		message = fmt.Sprintf("%s added to %s.", company.Name, industry.Industry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: message}, nil
}

func entityToIndustryResponse(ind *entity.Industry) dto.IndustryResponse {
	return dto.IndustryResponse{Code: ind.Code, Industry: ind.Industry}
}
