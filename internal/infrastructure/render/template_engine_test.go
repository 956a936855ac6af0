package render_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recibospro/recibos-api/internal/application/receipts"
	"github.com/recibospro/recibos-api/internal/domain/entity"
	"github.com/recibospro/recibos-api/internal/infrastructure/render"
)

func sampleData() receipts.TemplateData {
	return receipts.TemplateData{
		Company: entity.CompanySnapshot{
			RazonSocial: "Estudio Demo SRL",
			CUIT:        "30712345678",
			Domicilio:   "Av. Corrientes 1234, CABA",
		},
		Employee: receipts.TemplateEmployee{
			FullName:     "Molina, Juana",
			CUIL:         "20301234567",
			Legajo:       "0042",
			Cargo:        "Analista",
			CBU:          "2850590940090418135201",
			BancoInfo:    "-",
			FechaIngreso: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC).Format("02/01/2006"),
			SueldoBasico: decimal.NewFromInt(100000),
		},
		Periodo:   receipts.TemplatePeriod{Mes: "07", Anio: 2026},
		NroRecibo: "BBCCDDE1",
		Items: []receipts.TemplateItem{
			{
				ReceiptItem: entity.ReceiptItem{
					Codigo:            "001",
					Concepto:          "Sueldo Básico",
					Unidades:          decimal.NewFromInt(30),
					MontoRemunerativo: decimal.NewFromInt(100000),
				},
				IsRemunerativo: true,
			},
			{
				ReceiptItem: entity.ReceiptItem{
					Codigo:         "201",
					Concepto:       "Jubilación",
					MontoDeduccion: decimal.NewFromInt(17000),
				},
				IsDeduccion: true,
			},
		},
		Totales: receipts.TemplateTotals{
			Bruto:      decimal.NewFromInt(100000),
			Neto:       decimal.NewFromInt(83000),
			Descuentos: decimal.NewFromInt(17000),
		},
		ImporteEnLetras: "OCHENTA Y TRES MIL PESOS ",
	}
}

func TestTemplateEngine_RellenaElRecibo(t *testing.T) {
	engine, err := render.NewTemplateEngine()
	require.NoError(t, err)

	html, err := engine.Fill(context.Background(), sampleData())
	require.NoError(t, err)

	assert.Contains(t, html, "Estudio Demo SRL")
	assert.Contains(t, html, "30712345678")
	assert.Contains(t, html, "Molina, Juana")
	assert.Contains(t, html, "Sueldo Básico")
	assert.Contains(t, html, "SON OCHENTA Y TRES MIL PESOS")
	assert.Contains(t, html, "07/2026")
	assert.Contains(t, html, "01/03/2020")
}

func TestTemplateEngine_FormateaMontosConSeparadorArgentino(t *testing.T) {
	engine, err := render.NewTemplateEngine()
	require.NoError(t, err)

	html, err := engine.Fill(context.Background(), sampleData())
	require.NoError(t, err)

	assert.Contains(t, html, "100.000,00", "miles con punto, decimales con coma")
	assert.Contains(t, html, "83.000,00")
}

func TestTemplateEngine_ColumnasSegunClasificacion(t *testing.T) {
	engine, err := render.NewTemplateEngine()
	require.NoError(t, err)

	data := sampleData()
	html, err := engine.Fill(context.Background(), data)
	require.NoError(t, err)

	// La deducción no figura como monto remunerativo.
	assert.Contains(t, html, "17.000,00")
	assert.NotContains(t, html, "-17.000,00")
}
