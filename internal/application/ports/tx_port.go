package ports

import (
	"context"

	"github.com/recibospro/recibos-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción. Los reciben los
// callbacks de TenantTxRunner; fuera de la transacción no deben usarse.
type TxRepos struct {
	Users     repository.UserRepository
	Companies repository.CompanyRepository
	Employees repository.EmployeeRepository
	Receipts  repository.ReceiptRepository
}

// TenantTxRunner define el puerto de salida para ejecutar una función dentro
// de una transacción serializada por tenant.
//
// Contrato de concurrencia: dos invocaciones concurrentes con el mismo
// tenantID no se solapan. Es lo que vuelve atómico el patrón contar-y-crear
// de la cuota: sin esta serialización, dos requests simultáneos del mismo
// tenant podrían pasar el conteo antes de que cualquiera confirme su insert.
// La implementación PostgreSQL usa pg_advisory_xact_lock dentro de la tx.
type TenantTxRunner interface {
	RunTenant(ctx context.Context, tenantID string, fn func(repos TxRepos) error) error
}
