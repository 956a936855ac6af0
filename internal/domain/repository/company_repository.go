package repository

import (
	"context"

	"github.com/recibospro/recibos-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// Todas las lecturas y escrituras van acotadas al tenant (userID): una empresa
// de otro tenant es indistinguible de una inexistente.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Company, error)
	GetByCUIT(ctx context.Context, cuit string) (*entity.Company, error) // el CUIT es único a nivel sistema
	Update(ctx context.Context, company *entity.Company) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Company, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, id, userID string) error
}
