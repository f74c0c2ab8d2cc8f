package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con la misma semántica que los adaptadores de PostgreSQL:
// (nil, nil) cuando no hay fila, NotFound por filas afectadas, ErrDuplicate
// en claves repetidas y defaults de tabla en el insert de facturas.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	companies    map[string]*entity.Company
	industries   map[string]*entity.Industry
	invoices     map[int64]*entity.Invoice
	associations [][2]string // {comp_code, ind_code}
	nextInvoice  int64
}

func newMemStore() *memStore {
	return &memStore{
		companies:  make(map[string]*entity.Company),
		industries: make(map[string]*entity.Industry),
		invoices:   make(map[int64]*entity.Invoice),
	}
}

// today replica el sellado de fecha de la columna date.
func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ── CompanyRepository ────────────────────────────────────────────────────────

type memCompanyRepo struct{ s *memStore }

var _ repository.CompanyRepository = (*memCompanyRepo)(nil)

func (r *memCompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	list := make([]*entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		copied := *c
		list = append(list, &copied)
	}
	return list, nil
}

func (r *memCompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	c, ok := r.s.companies[code]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *memCompanyRepo) IndustryNames(ctx context.Context, code string) ([]string, error) {
	names := make([]string, 0)
	for _, a := range r.s.associations {
		if a[0] == code {
			names = append(names, r.s.industries[a[1]].Industry)
		}
	}
	return names, nil
}

func (r *memCompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	if _, ok := r.s.companies[company.Code]; ok {
		return domain.ErrDuplicate
	}
	copied := *company
	r.s.companies[company.Code] = &copied
	return nil
}

func (r *memCompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	if _, ok := r.s.companies[company.Code]; !ok {
		return domain.ErrCompanyNotFound
	}
	copied := *company
	r.s.companies[company.Code] = &copied
	return nil
}

func (r *memCompanyRepo) Delete(ctx context.Context, code string) error {
	if _, ok := r.s.companies[code]; !ok {
		return domain.ErrCompanyNotFound
	}
	delete(r.s.companies, code)
	return nil
}

// ── InvoiceRepository ────────────────────────────────────────────────────────

type memInvoiceRepo struct{ s *memStore }

var _ repository.InvoiceRepository = (*memInvoiceRepo)(nil)

func (r *memInvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	list := make([]*entity.Invoice, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		copied := *inv
		list = append(list, &copied)
	}
	return list, nil
}

func (r *memInvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	copied := *inv
	return &copied, nil
}

func (r *memInvoiceRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r *memInvoiceRepo) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error) {
	r.s.nextInvoice++
	inv := &entity.Invoice{
		ID:       r.s.nextInvoice,
		CompCode: compCode,
		Amt:      amt,
		Paid:     false,
		AddDate:  today(),
		PaidDate: nil,
	}
	r.s.invoices[inv.ID] = inv
	copied := *inv
	return &copied, nil
}

func (r *memInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	if _, ok := r.s.invoices[invoice.ID]; !ok {
		return domain.ErrInvoiceNotFound
	}
	copied := *invoice
	r.s.invoices[invoice.ID] = &copied
	return nil
}

func (r *memInvoiceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.s.invoices[id]; !ok {
		return domain.ErrInvoiceNotFound
	}
	delete(r.s.invoices, id)
	return nil
}

// ── IndustryRepository ───────────────────────────────────────────────────────

type memIndustryRepo struct{ s *memStore }

var _ repository.IndustryRepository = (*memIndustryRepo)(nil)

func (r *memIndustryRepo) List(ctx context.Context) ([]*entity.Industry, error) {
	list := make([]*entity.Industry, 0, len(r.s.industries))
	for _, ind := range r.s.industries {
		copied := *ind
		list = append(list, &copied)
	}
	return list, nil
}

func (r *memIndustryRepo) GetByCode(ctx context.Context, code string) (*entity.Industry, error) {
	ind, ok := r.s.industries[code]
	if !ok {
		return nil, nil
	}
	copied := *ind
	return &copied, nil
}

func (r *memIndustryRepo) CompanyNames(ctx context.Context, code string) ([]string, error) {
	names := make([]string, 0)
	for _, a := range r.s.associations {
		if a[1] == code {
			names = append(names, r.s.companies[a[0]].Name)
		}
	}
	return names, nil
}

func (r *memIndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	if _, ok := r.s.industries[industry.Code]; ok {
		return domain.ErrDuplicate
	}
	copied := *industry
	r.s.industries[industry.Code] = &copied
	return nil
}

func (r *memIndustryRepo) Associate(ctx context.Context, compCode, indCode string) error {
	r.s.associations = append(r.s.associations, [2]string{compCode, indCode})
	return nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

// memTxRunner ejecuta el callback directamente sobre los fakes; aquí no hay
// transacción que simular, el aislamiento lo cubren los tests de integración.
type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	invoices repository.InvoiceRepository,
	industries repository.IndustryRepository,
) error) error {
	return fn(&memCompanyRepo{s: t.s}, &memInvoiceRepo{s: t.s}, &memIndustryRepo{s: t.s})
}
