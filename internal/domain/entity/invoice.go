package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura de una empresa.
// Invariante: PaidDate es no nulo si y solo si Paid es true; la transición
// la mantiene exclusivamente el caso de uso de actualización.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time  // fecha de creación, inmutable
	PaidDate *time.Time // nil mientras la factura no esté pagada
}
