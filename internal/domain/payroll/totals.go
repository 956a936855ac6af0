// Package payroll contiene la lógica pura de liquidación: cálculo de totales
// y conversión de montos a letras para la línea legal del recibo.
package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/recibospro/recibos-api/internal/domain"
	"github.com/recibospro/recibos-api/internal/domain/entity"
)

// CalcularTotales suma las líneas de liquidación:
//
//	TotalBruto      = Σ remunerativo + Σ no remunerativo
//	TotalDescuentos = Σ deducción
//	TotalNeto       = TotalBruto − TotalDescuentos
//
// Aritmética decimal exacta; lista vacía produce totales en cero.
// Montos negativos se rechazan con ErrInvalidInput: un recibo es un documento
// legal y un importe negativo es siempre un error de carga, no un dato.
func CalcularTotales(items []entity.ReceiptItem) (entity.ReceiptTotals, error) {
	remunerativo := decimal.Zero
	noRemunerativo := decimal.Zero
	deducciones := decimal.Zero

	for i, item := range items {
		if item.MontoRemunerativo.IsNegative() || item.MontoNoRemunerativo.IsNegative() || item.MontoDeduccion.IsNegative() {
			return entity.ReceiptTotals{}, fmt.Errorf("%w: ítem %d (%s) con monto negativo", domain.ErrInvalidInput, i, item.Codigo)
		}
		remunerativo = remunerativo.Add(item.MontoRemunerativo)
		noRemunerativo = noRemunerativo.Add(item.MontoNoRemunerativo)
		deducciones = deducciones.Add(item.MontoDeduccion)
	}

	bruto := remunerativo.Add(noRemunerativo)
	return entity.ReceiptTotals{
		TotalBruto:      bruto,
		TotalNeto:       bruto.Sub(deducciones),
		TotalDescuentos: deducciones,
	}, nil
}
