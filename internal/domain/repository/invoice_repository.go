package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*entity.Invoice, error)
	// GetByID devuelve (nil, nil) si la factura no existe.
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// GetByIDForUpdate bloquea la fila (SELECT ... FOR UPDATE); solo tiene
	// sentido sobre un repositorio atado a una transacción.
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Invoice, error)
	// Create inserta con paid=false, add_date=CURRENT_DATE y paid_date=NULL
	// (defaults de la tabla) y devuelve el registro completo con su id.
	Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error)
	// Update persiste amt, paid y paid_date de la factura indicada.
	// Devuelve domain.ErrInvoiceNotFound si no afecta ninguna fila.
	Update(ctx context.Context, invoice *entity.Invoice) error
	// Delete devuelve domain.ErrInvoiceNotFound si no afecta ninguna fila.
	Delete(ctx context.Context, id int64) error
}
