package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para crear una factura: {code, amount}.
type CreateInvoiceRequest struct {
	Code   string          `json:"code"` // código de la empresa dueña
	Amount decimal.Decimal `json:"amount"`
}

// UpdateInvoiceRequest entrada para actualizar una factura: {amount, paid}.
type UpdateInvoiceRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Paid   bool            `json:"paid"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"` // null mientras no esté pagada
}

// InvoiceDetailResponse factura con su empresa dueña embebida.
type InvoiceDetailResponse struct {
	InvoiceResponse
	Company CompanyResponse `json:"company"`
}

// InvoiceListResponse listado completo: {invoices: [...]}.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// InvoiceBody envoltura {invoice: {...}} de las respuestas individuales.
type InvoiceBody struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceDetailBody envoltura {invoice: {...}} con la empresa embebida.
type InvoiceDetailBody struct {
	Invoice InvoiceDetailResponse `json:"invoice"`
}
