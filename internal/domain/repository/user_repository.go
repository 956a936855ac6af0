package repository

import (
	"context"

	"github.com/recibospro/recibos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User/tenant (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
