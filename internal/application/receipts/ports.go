package receipts

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/recibospro/recibos-api/internal/domain/entity"
)

// TemplateEmployee datos del empleado ya aplanados y formateados para la plantilla.
type TemplateEmployee struct {
	FullName     string // "Apellido, Nombre"
	CUIL         string
	Legajo       string
	Cargo        string
	CBU          string
	BancoInfo    string // "-" cuando el empleado no tiene banco informado
	FechaIngreso string // DD/MM/YYYY
	SueldoBasico decimal.Decimal
}

// TemplateItem línea de liquidación con su clasificación de columnas.
// Un ítem puede marcar más de una columna si lleva más de un monto positivo.
type TemplateItem struct {
	entity.ReceiptItem
	IsRemunerativo   bool
	IsNoRemunerativo bool
	IsDeduccion      bool
}

// TemplateTotals totales para el pie del recibo.
type TemplateTotals struct {
	Bruto          decimal.Decimal
	Neto           decimal.Decimal
	Descuentos     decimal.Decimal
	NoRemunerativo decimal.Decimal
}

// TemplatePeriod período con el mes ya formateado a dos dígitos.
type TemplatePeriod struct {
	Mes  string // "01".."12"
	Anio int
}

// TemplateData contexto plano que consume la plantilla del recibo.
type TemplateData struct {
	Company         entity.CompanySnapshot
	Employee        TemplateEmployee
	Periodo         TemplatePeriod
	NroRecibo       string
	Items           []TemplateItem
	Totales         TemplateTotals
	ImporteEnLetras string // renglón legal "SON PESOS ..."
}

// TemplateFiller define el puerto del motor de plantillas: contexto plano
// adentro, markup HTML afuera.
type TemplateFiller interface {
	Fill(ctx context.Context, data TemplateData) (string, error)
}

// PageRenderer define el puerto del renderizador headless: HTML adentro,
// documento binario afuera. El adaptador es dueño del recurso externo
// (Chrome) y debe liberarlo por request, falle o no el render.
type PageRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}
