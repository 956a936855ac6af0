package repository

import (
	"context"
	"time"

	"github.com/recibospro/recibos-api/internal/domain/entity"
)

// ReceiptFilter filtros opcionales para listar recibos. Cero/vacío = sin filtro.
type ReceiptFilter struct {
	CompanyID  string
	EmployeeID string
	Mes        int
	Anio       int
}

// ReceiptRepository define el puerto de persistencia para Receipt (DIP).
// Los recibos son inmutables: el puerto no expone update ni delete a propósito;
// la capa de persistencia tampoco debe recalcular snapshots ni totales jamás.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Receipt, error)
	ListByUser(ctx context.Context, userID string, filter ReceiptFilter) ([]*entity.Receipt, error)
	// CountByUserInRange cuenta recibos del tenant con createdAt en [desde, hasta).
	// Lo usa la cuota mensual; debe ejecutarse fresco en cada intento de creación.
	CountByUserInRange(ctx context.Context, userID string, desde, hasta time.Time) (int, error)
}
