package dto

import "github.com/recibospro/recibos-api/internal/domain/entity"

// ResourceUsage uso de un recurso contra su límite de plan.
// Percentage va capado a 100; con límite ilimitado queda en 0 y IsUnlimited en true.
type ResourceUsage struct {
	Used        int  `json:"used"`
	Limit       int  `json:"limit"` // -1 cuando es ilimitado
	Percentage  int  `json:"percentage"`
	IsUnlimited bool `json:"is_unlimited"`
}

// PlanStatus plan vigente del tenant.
type PlanStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ReceiptsUsage uso de recibos del mes calendario en curso.
type ReceiptsUsage struct {
	ResourceUsage
	Period entity.Period `json:"period"`
}

// UsageSection agrupa el uso por recurso.
type UsageSection struct {
	Companies ResourceUsage `json:"companies"`
	Receipts  ReceiptsUsage `json:"receipts"`
}

// UsageReport respuesta de GET /api/subscription/status.
type UsageReport struct {
	Plan  PlanStatus   `json:"plan"`
	Usage UsageSection `json:"usage"`
}
