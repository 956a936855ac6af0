package receipts

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/recibospro/recibos-api/internal/domain"
	"github.com/recibospro/recibos-api/internal/domain/entity"
	"github.com/recibospro/recibos-api/internal/domain/payroll"
	"github.com/recibospro/recibos-api/internal/domain/repository"
)

// PDFUseCase genera el documento imprimible de un recibo ya persistido.
// El render es libre de efectos sobre los datos: ante un fallo se puede
// reintentar completo desde el recibo guardado.
type PDFUseCase struct {
	receiptRepo repository.ReceiptRepository
	filler      TemplateFiller
	renderer    PageRenderer
}

// NewPDFUseCase construye el caso de uso inyectando motor de plantillas y renderizador.
func NewPDFUseCase(receiptRepo repository.ReceiptRepository, filler TemplateFiller, renderer PageRenderer) *PDFUseCase {
	return &PDFUseCase{receiptRepo: receiptRepo, filler: filler, renderer: renderer}
}

// DownloadReceiptPDF recupera el recibo del tenant, arma el contexto de
// plantilla desde los snapshots congelados y lo renderiza a PDF.
//
// Retorna:
//   - (pdf, filename, nil)    si todo sale bien.
//   - domain.ErrNotFound      si el recibo no existe o no es del tenant.
//   - domain.ErrInvalidInput  si los snapshots no tienen los campos requeridos.
//   - domain.ErrRenderFailed  si falla la plantilla o la generación de página.
func (uc *PDFUseCase) DownloadReceiptPDF(ctx context.Context, tenantID, receiptID string) (pdf []byte, filename string, err error) {
	if tenantID == "" {
		return nil, "", domain.ErrUnauthorized
	}
	receipt, err := uc.receiptRepo.GetByIDAndUser(ctx, receiptID, tenantID)
	if err != nil {
		return nil, "", fmt.Errorf("obtener recibo: %w", err)
	}
	if receipt == nil {
		return nil, "", domain.ErrNotFound
	}

	data, err := buildTemplateData(receipt)
	if err != nil {
		return nil, "", err
	}

	html, err := uc.filler.Fill(ctx, *data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: plantilla: %v", domain.ErrRenderFailed, err)
	}

	pdf, err = uc.renderer.RenderPDF(ctx, html)
	if err != nil {
		return nil, "", fmt.Errorf("%w: página: %v", domain.ErrRenderFailed, err)
	}

	filename = fmt.Sprintf("recibo-%s-%d-%d.pdf",
		receipt.EmployeeSnapshot.Apellido, receipt.Periodo.Mes, receipt.Periodo.Anio)
	return pdf, filename, nil
}

// buildTemplateData aplana el recibo al contexto de la plantilla. Falla
// temprano si algún snapshot quedó sin los campos identificatorios: un
// documento legal sin emisor o sin titular no debe renderizarse.
func buildTemplateData(r *entity.Receipt) (*TemplateData, error) {
	if r.CompanySnapshot.RazonSocial == "" || r.CompanySnapshot.CUIT == "" {
		return nil, fmt.Errorf("%w: snapshot de empresa incompleto", domain.ErrInvalidInput)
	}
	emp := r.EmployeeSnapshot
	if emp.Nombre == "" || emp.Apellido == "" || emp.CUIL == "" {
		return nil, fmt.Errorf("%w: snapshot de empleado incompleto", domain.ErrInvalidInput)
	}

	letras, err := payroll.NumeroALetras(r.Totales.TotalNeto)
	if err != nil {
		return nil, err
	}

	bancoInfo := emp.Banco
	if bancoInfo == "" {
		bancoInfo = "-"
	}

	items := make([]TemplateItem, 0, len(r.Items))
	noRemunerativo := decimal.Zero
	for _, it := range r.Items {
		items = append(items, TemplateItem{
			ReceiptItem:      it,
			IsRemunerativo:   it.MontoRemunerativo.IsPositive(),
			IsNoRemunerativo: it.MontoNoRemunerativo.IsPositive(),
			IsDeduccion:      it.MontoDeduccion.IsPositive(),
		})
		noRemunerativo = noRemunerativo.Add(it.MontoNoRemunerativo)
	}

	return &TemplateData{
		Company: r.CompanySnapshot,
		Employee: TemplateEmployee{
			FullName:     emp.Apellido + ", " + emp.Nombre,
			CUIL:         emp.CUIL,
			Legajo:       emp.Legajo,
			Cargo:        emp.Cargo,
			CBU:          emp.CBU,
			BancoInfo:    bancoInfo,
			FechaIngreso: emp.FechaIngreso.Format("02/01/2006"),
			SueldoBasico: emp.SueldoBasico,
		},
		Periodo: TemplatePeriod{
			Mes:  fmt.Sprintf("%02d", r.Periodo.Mes),
			Anio: r.Periodo.Anio,
		},
		NroRecibo:       nroRecibo(r.ID),
		Items:           items,
		Totales: TemplateTotals{
			Bruto:          r.Totales.TotalBruto,
			Neto:           r.Totales.TotalNeto,
			Descuentos:     r.Totales.TotalDescuentos,
			NoRemunerativo: noRemunerativo,
		},
		ImporteEnLetras: letras,
	}, nil
}

// nroRecibo deriva el número visible del documento del sufijo del ID.
func nroRecibo(id string) string {
	clean := strings.ReplaceAll(id, "-", "")
	if len(clean) > 8 {
		clean = clean[len(clean)-8:]
	}
	return strings.ToUpper(clean)
}
