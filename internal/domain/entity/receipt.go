package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period identifica el período liquidado de un recibo.
type Period struct {
	Mes  int `json:"mes"` // 1..12
	Anio int `json:"anio"`
}

// EmployeeSnapshot es la copia congelada de los datos del empleado al momento
// de emitir el recibo. Es un tipo propio, no una referencia: ediciones
// posteriores del empleado jamás alteran un recibo ya emitido.
type EmployeeSnapshot struct {
	Nombre       string          `json:"nombre"`
	Apellido     string          `json:"apellido"`
	CUIL         string          `json:"cuil"`
	Legajo       string          `json:"legajo"`
	Cargo        string          `json:"cargo"`
	CBU          string          `json:"cbu"`
	Banco        string          `json:"banco,omitempty"`
	FechaIngreso time.Time       `json:"fecha_ingreso"`
	SueldoBasico decimal.Decimal `json:"sueldo_basico"`
}

// CompanySnapshot es la copia congelada de los datos de la empresa al momento
// de emitir el recibo.
type CompanySnapshot struct {
	RazonSocial string `json:"razon_social"`
	CUIT        string `json:"cuit"`
	Domicilio   string `json:"domicilio"`
}

// ReceiptItem es una línea de liquidación. Un mismo ítem puede llevar monto
// remunerativo, no remunerativo y deducción a la vez; los que no apliquen van en cero.
type ReceiptItem struct {
	Codigo              string          `json:"codigo"`
	Concepto            string          `json:"concepto"`
	Unidades            decimal.Decimal `json:"unidades"`
	MontoRemunerativo   decimal.Decimal `json:"monto_remunerativo"`
	MontoNoRemunerativo decimal.Decimal `json:"monto_no_remunerativo"`
	MontoDeduccion      decimal.Decimal `json:"monto_deduccion"`
}

// ReceiptTotals totales calculados una única vez al emitir; nunca se recalculan en lecturas.
type ReceiptTotals struct {
	TotalBruto      decimal.Decimal `json:"total_bruto"`
	TotalNeto       decimal.Decimal `json:"total_neto"`
	TotalDescuentos decimal.Decimal `json:"total_descuentos"`
}

// Receipt es el recibo de sueldo: documento legal e inmutable. Se crea una vez
// (sujeto a cuota del plan) y después solo se lee: listados, historial por
// empleado y render del PDF. No existen operaciones de update ni delete.
type Receipt struct {
	ID               string
	UserID           string // tenant emisor
	CompanyID        string
	EmployeeID       string
	Periodo          Period
	EmployeeSnapshot EmployeeSnapshot
	CompanySnapshot  CompanySnapshot
	Items            []ReceiptItem
	Totales          ReceiptTotals
	CreatedAt        time.Time
}
