package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/recibospro/recibos-api/internal/domain/entity"
)

// ReceiptItemRequest línea de liquidación en el alta de un recibo.
// Los montos no informados quedan en cero (decimal.Decimal zero value).
type ReceiptItemRequest struct {
	Codigo              string          `json:"codigo" validate:"required"`
	Concepto            string          `json:"concepto" validate:"required"`
	Unidades            decimal.Decimal `json:"unidades"`
	MontoRemunerativo   decimal.Decimal `json:"monto_remunerativo"`
	MontoNoRemunerativo decimal.Decimal `json:"monto_no_remunerativo"`
	MontoDeduccion      decimal.Decimal `json:"monto_deduccion"`
}

// CreateReceiptRequest body para POST /api/receipts.
type CreateReceiptRequest struct {
	EmployeeID string               `json:"employee_id" validate:"required"`
	Periodo    entity.Period        `json:"periodo" validate:"required"`
	Items      []ReceiptItemRequest `json:"items" validate:"required,min=1"`
}

// ReceiptResponse recibo completo: referencias, snapshots congelados y totales.
type ReceiptResponse struct {
	ID               string                  `json:"id"`
	CompanyID        string                  `json:"company_id"`
	EmployeeID       string                  `json:"employee_id"`
	Periodo          entity.Period           `json:"periodo"`
	EmployeeSnapshot entity.EmployeeSnapshot `json:"employee_snapshot"`
	CompanySnapshot  entity.CompanySnapshot  `json:"company_snapshot"`
	Items            []entity.ReceiptItem    `json:"items"`
	Totales          entity.ReceiptTotals    `json:"totales"`
	CreatedAt        time.Time               `json:"created_at"`
}

// ReceiptSummary entrada liviana para listados; la data real vive en los snapshots.
type ReceiptSummary struct {
	ID        string               `json:"id"`
	CompanyID string               `json:"company_id"`
	Empleado  string               `json:"empleado"` // "Apellido, Nombre" del snapshot
	Periodo   entity.Period        `json:"periodo"`
	Totales   entity.ReceiptTotals `json:"totales"`
	CreatedAt time.Time            `json:"created_at"`
}

// ReceiptListResponse lista de recibos del tenant, más recientes primero.
type ReceiptListResponse struct {
	Results int              `json:"results"`
	Items   []ReceiptSummary `json:"items"`
}

// ListReceiptsQuery filtros de GET /api/receipts.
type ListReceiptsQuery struct {
	CompanyID  string `query:"companyId"`
	EmployeeID string `query:"employeeId"`
	Mes        int    `query:"mes"`
	Anio       int    `query:"anio"`
}
