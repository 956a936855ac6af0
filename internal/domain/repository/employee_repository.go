package repository

import (
	"context"

	"github.com/recibospro/recibos-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// companyID vacío en List/Count significa "todas las empresas del tenant".
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Employee, error)
	ListByUser(ctx context.Context, userID, companyID string, limit, offset int) ([]*entity.Employee, error)
	CountByUser(ctx context.Context, userID, companyID string) (int, error)
}
