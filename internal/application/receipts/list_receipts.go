package receipts

import (
	"context"
	"fmt"

	"github.com/recibospro/recibos-api/internal/application/dto"
	"github.com/recibospro/recibos-api/internal/domain"
	"github.com/recibospro/recibos-api/internal/domain/repository"
)

// ListReceiptsUseCase lecturas de recibos: listado con filtros y detalle.
type ListReceiptsUseCase struct {
	receiptRepo repository.ReceiptRepository
}

// NewListReceiptsUseCase construye el caso de uso.
func NewListReceiptsUseCase(receiptRepo repository.ReceiptRepository) *ListReceiptsUseCase {
	return &ListReceiptsUseCase{receiptRepo: receiptRepo}
}

// ListReceipts lista los recibos del tenant, más recientes primero, con
// filtros opcionales por empresa, empleado y período.
func (uc *ListReceiptsUseCase) ListReceipts(ctx context.Context, tenantID string, q dto.ListReceiptsQuery) (*dto.ReceiptListResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrUnauthorized
	}
	if q.Mes != 0 && (q.Mes < 1 || q.Mes > 12) {
		return nil, fmt.Errorf("%w: mes %d", domain.ErrInvalidInput, q.Mes)
	}

	list, err := uc.receiptRepo.ListByUser(ctx, tenantID, repository.ReceiptFilter{
		CompanyID:  q.CompanyID,
		EmployeeID: q.EmployeeID,
		Mes:        q.Mes,
		Anio:       q.Anio,
	})
	if err != nil {
		return nil, fmt.Errorf("listar recibos: %w", err)
	}

	items := make([]dto.ReceiptSummary, 0, len(list))
	for _, r := range list {
		items = append(items, dto.ReceiptSummary{
			ID:        r.ID,
			CompanyID: r.CompanyID,
			Empleado:  r.EmployeeSnapshot.Apellido + ", " + r.EmployeeSnapshot.Nombre,
			Periodo:   r.Periodo,
			Totales:   r.Totales,
			CreatedAt: r.CreatedAt,
		})
	}
	return &dto.ReceiptListResponse{Results: len(items), Items: items}, nil
}

// GetReceipt devuelve el recibo completo (snapshots incluidos) del tenant.
func (uc *ListReceiptsUseCase) GetReceipt(ctx context.Context, tenantID, receiptID string) (*dto.ReceiptResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrUnauthorized
	}
	receipt, err := uc.receiptRepo.GetByIDAndUser(ctx, receiptID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("obtener recibo: %w", err)
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	return receiptToResponse(receipt), nil
}
