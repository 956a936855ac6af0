package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recibospro/recibos-api/internal/application/ports"
)

// Asegura que TxRunner implementa ports.TenantTxRunner.
var _ ports.TenantTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL serializada
// por tenant mediante un advisory lock transaccional: dos transacciones
// concurrentes del mismo tenant se encolan, las de tenants distintos no se
// bloquean entre sí. El lock se libera solo en Commit/Rollback.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunTenant inicia una transacción, toma el lock del tenant, ejecuta fn con
// repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunTenant(ctx context.Context, tenantID string, fn func(repos ports.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, tenantID); err != nil {
		return fmt.Errorf("lock tenant: %w", err)
	}

	repos := ports.TxRepos{
		Users:     NewUserRepository(tx),
		Companies: NewCompanyRepository(tx),
		Employees: NewEmployeeRepository(tx),
		Receipts:  NewReceiptRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
