package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/recibospro/recibos-api/internal/application/dto"
	"github.com/recibospro/recibos-api/internal/application/receipts"
)

// ReceiptHandler maneja la emisión, consulta y descarga de recibos.
type ReceiptHandler struct {
	createUC *receipts.CreateReceiptUseCase
	listUC   *receipts.ListReceiptsUseCase
	pdfUC    *receipts.PDFUseCase
}

// NewReceiptHandler construye el handler de recibos.
func NewReceiptHandler(createUC *receipts.CreateReceiptUseCase, listUC *receipts.ListReceiptsUseCase, pdfUC *receipts.PDFUseCase) *ReceiptHandler {
	return &ReceiptHandler{createUC: createUC, listUC: listUC, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Emitir un recibo de sueldo
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateReceiptRequest  true  "employee_id, periodo, items"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receipts [post]
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.CreateReceipt(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar recibos del tenant
// @Tags         receipts
// @Produce      json
// @Security     BearerAuth
// @Param        companyId   query  string  false  "filtrar por empresa"
// @Param        employeeId  query  string  false  "filtrar por empleado"
// @Param        mes         query  int     false  "1..12"
// @Param        anio        query  int     false  "año del período"
// @Success      200  {object}  dto.ReceiptListResponse
// @Router       /api/receipts [get]
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	var q dto.ListReceiptsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	out, err := h.listUC.ListReceipts(c.Context(), GetUserID(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener recibo por ID (snapshots y totales incluidos)
// @Tags         receipts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Receipt ID"
// @Success      200  {object}  dto.ReceiptResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [get]
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.listUC.GetReceipt(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar el recibo en PDF
// @Tags         receipts
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "Receipt ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id}/pdf [get]
func (h *ReceiptHandler) DownloadPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.pdfUC.DownloadReceiptPDF(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdf)
}
