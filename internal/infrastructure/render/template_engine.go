package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/recibospro/recibos-api/internal/application/receipts"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Asegura que TemplateEngine implementa receipts.TemplateFiller.
var _ receipts.TemplateFiller = (*TemplateEngine)(nil)

// TemplateEngine rellena la plantilla HTML del recibo con un contexto plano.
// La plantilla va embebida en el binario: no hay archivos que desplegar aparte.
type TemplateEngine struct {
	tmpl *template.Template
}

// NewTemplateEngine parsea la plantilla embebida una sola vez.
func NewTemplateEngine() (*TemplateEngine, error) {
	tmpl, err := template.New("receipt.html").Funcs(template.FuncMap{
		"moneda": formatMoneda,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse plantilla de recibo: %w", err)
	}
	return &TemplateEngine{tmpl: tmpl}, nil
}

// Fill ejecuta la plantilla con los datos del recibo y devuelve el HTML.
func (e *TemplateEngine) Fill(_ context.Context, data receipts.TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, "receipt.html", data); err != nil {
		return "", fmt.Errorf("ejecutar plantilla de recibo: %w", err)
	}
	return buf.String(), nil
}

// esAR formatea números con separadores argentinos (1.234,56).
var esAR = message.NewPrinter(language.MustParse("es-AR"))

// formatMoneda imprime un monto con dos decimales y separador de miles.
// Solo para display: los cálculos nunca pasan por float.
func formatMoneda(d decimal.Decimal) string {
	return esAR.Sprintf("%.2f", d.InexactFloat64())
}
