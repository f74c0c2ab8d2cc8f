package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// InvoiceUseCase aplica las reglas de negocio para facturas, incluida la
// transición paid/unpaid con su sellado de fecha.
type InvoiceUseCase struct {
	repo      repository.InvoiceRepository
	companies repository.CompanyRepository
	tx        TxRunner
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, companies repository.CompanyRepository, tx TxRunner) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, companies: companies, tx: tx}
}

// List devuelve todas las facturas tal cual están persistidas.
func (uc *InvoiceUseCase) List(ctx context.Context) (*dto.InvoiceListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	invoices := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		invoices = append(invoices, entityToInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{Invoices: invoices}, nil
}

// GetByID devuelve la factura con su empresa dueña embebida. Una empresa
// ausente con la factura presente es una violación de integridad referencial:
// se propaga como error genérico, no como 404.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id int64) (*dto.InvoiceDetailResponse, error) {
	invoice, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	company, err := uc.companies.GetByCode(ctx, invoice.CompCode)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("invoice %d references missing company %q", invoice.ID, invoice.CompCode)
	}
	return &dto.InvoiceDetailResponse{
		InvoiceResponse: entityToInvoiceResponse(invoice),
		Company:         entityToCompanyResponse(company),
	}, nil
}

// Create inserta una factura nueva para la empresa indicada. Los defaults
// (paid=false, add_date=hoy, paid_date=null) los pone la tabla.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.Create(ctx, in.Code, in.Amount)
	if err != nil {
		return nil, err
	}
	out := entityToInvoiceResponse(invoice)
	return &out, nil
}

// Update aplica la regla de transición de pago dentro de una transacción con
// la fila bloqueada, evaluada entre el paid actual y el solicitado:
//
//	false -> true : amt, paid=true,  paid_date = fecha actual
//	true  -> false: amt, paid=false, paid_date = null
//	sin cambio    : amt, paid según lo pedido, paid_date intacto
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	var updated *entity.Invoice
	err := uc.tx.Run(ctx, func(
		_ repository.CompanyRepository,
		invoices repository.InvoiceRepository,
		_ repository.IndustryRepository,
	) error {
		invoice, err := invoices.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.ErrInvoiceNotFound
		}

		switch {
		case !invoice.Paid && in.Paid:
			today := dateToday()
			invoice.PaidDate = &today
		case invoice.Paid && !in.Paid:
			invoice.PaidDate = nil
		}
		invoice.Amt = in.Amount
		invoice.Paid = in.Paid

		if err := invoices.Update(ctx, invoice); err != nil {
			return err
		}
		updated = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := entityToInvoiceResponse(updated)
	return &out, nil
}

// Delete elimina la factura con chequeo de filas afectadas.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// dateToday devuelve la fecha actual sin componente horario (columna date).
func dateToday() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entityToInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}
