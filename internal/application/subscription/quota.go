// Package subscription implementa el control de cuota por plan: cuántas
// empresas puede administrar un tenant y cuántos recibos puede emitir por mes.
package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/recibospro/recibos-api/internal/application/ports"
	"github.com/recibospro/recibos-api/internal/domain"
	"github.com/recibospro/recibos-api/internal/domain/entity"
)

// Enforcer evalúa los límites del plan como precondición de cada alta.
// Los chequeos leen el plan y los conteos frescos en cada intento (nada se
// cachea entre requests) y deben ejecutarse dentro de la transacción
// serializada por tenant (ports.TenantTxRunner) para que contar-y-crear sea
// atómico frente a requests concurrentes.
type Enforcer struct{}

// NewEnforcer construye el enforcer (sin estado).
func NewEnforcer() *Enforcer { return &Enforcer{} }

// CheckCompanyQuota permite o rechaza la creación de una empresa.
// El límite de empresas es total (no mensual).
func (e *Enforcer) CheckCompanyQuota(ctx context.Context, repos ports.TxRepos, tenantID string) error {
	plan, limits, err := planForTenant(ctx, repos, tenantID)
	if err != nil {
		return err
	}
	if limits.CompaniesUnlimited() {
		return nil
	}
	count, err := repos.Companies.CountByUser(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("contar empresas: %w", err)
	}
	if count >= limits.Companies {
		return fmt.Errorf("%w: alcanzaste el máximo de %d empresas del plan %s",
			domain.ErrQuotaExceeded, limits.Companies, plan)
	}
	return nil
}

// CheckReceiptQuota permite o rechaza la emisión de un recibo.
// El límite de recibos es por mes calendario del servidor, bordes incluidos.
func (e *Enforcer) CheckReceiptQuota(ctx context.Context, repos ports.TxRepos, tenantID string, now time.Time) error {
	plan, limits, err := planForTenant(ctx, repos, tenantID)
	if err != nil {
		return err
	}
	if limits.ReceiptsUnlimited() {
		return nil
	}
	desde, hasta := MonthRange(now)
	count, err := repos.Receipts.CountByUserInRange(ctx, tenantID, desde, hasta)
	if err != nil {
		return fmt.Errorf("contar recibos del mes: %w", err)
	}
	if count >= limits.Receipts {
		return fmt.Errorf("%w: alcanzaste el máximo de %d recibos este mes para el plan %s",
			domain.ErrQuotaExceeded, limits.Receipts, plan)
	}
	return nil
}

// MonthRange devuelve [primer instante del mes de t, primer instante del mes
// siguiente) en el huso local del servidor.
func MonthRange(t time.Time) (desde, hasta time.Time) {
	desde = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	hasta = desde.AddDate(0, 1, 0)
	return desde, hasta
}

func planForTenant(ctx context.Context, repos ports.TxRepos, tenantID string) (string, entity.PlanLimits, error) {
	user, err := repos.Users.GetByID(ctx, tenantID)
	if err != nil {
		return "", entity.PlanLimits{}, fmt.Errorf("obtener usuario: %w", err)
	}
	if user == nil {
		return "", entity.PlanLimits{}, domain.ErrUserNotFound
	}
	plan, limits := entity.LimitsForPlan(user.Plan)
	return plan, limits, nil
}
