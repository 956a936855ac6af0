package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/recibospro/recibos-api/internal/application/dto"
	"github.com/recibospro/recibos-api/internal/domain"
	"github.com/recibospro/recibos-api/internal/domain/entity"
	"github.com/recibospro/recibos-api/internal/domain/repository"
)

// UseCase arma el reporte de uso de la suscripción (solo lectura).
type UseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	receiptRepo repository.ReceiptRepository
	now         func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, receiptRepo repository.ReceiptRepository) *UseCase {
	return &UseCase{userRepo: userRepo, companyRepo: companyRepo, receiptRepo: receiptRepo, now: time.Now}
}

// GetUsage devuelve plan vigente y uso actual: empresas (total) y recibos del
// mes calendario en curso, cada uno con límite, porcentaje capado a 100 y
// bandera de ilimitado.
func (uc *UseCase) GetUsage(ctx context.Context, tenantID string) (*dto.UsageReport, error) {
	user, err := uc.userRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("obtener usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	plan, limits := entity.LimitsForPlan(user.Plan)

	companiesUsed, err := uc.companyRepo.CountByUser(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("contar empresas: %w", err)
	}

	now := uc.now()
	desde, hasta := MonthRange(now)
	receiptsUsed, err := uc.receiptRepo.CountByUserInRange(ctx, tenantID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("contar recibos del mes: %w", err)
	}

	status := user.SubscriptionStatus
	if status == "" {
		status = entity.SubscriptionActive
	}

	report := &dto.UsageReport{
		Plan: dto.PlanStatus{Name: plan, Status: status},
	}
	report.Usage.Companies = resourceUsage(companiesUsed, limits.Companies)
	report.Usage.Receipts = dto.ReceiptsUsage{
		ResourceUsage: resourceUsage(receiptsUsed, limits.Receipts),
		Period:        entity.Period{Mes: int(now.Month()), Anio: now.Year()},
	}
	return report, nil
}

func resourceUsage(used, limit int) dto.ResourceUsage {
	return dto.ResourceUsage{
		Used:        used,
		Limit:       limit,
		Percentage:  percentage(used, limit),
		IsUnlimited: limit == entity.Unlimited,
	}
}

// percentage redondea al entero más cercano y capa en 100.
// Ilimitado reporta 0: una barra de uso sin tope no tiene porcentaje.
func percentage(used, limit int) int {
	if limit == entity.Unlimited {
		return 0
	}
	if limit == 0 {
		return 100
	}
	p := (used*100 + limit/2) / limit
	if p > 100 {
		return 100
	}
	return p
}
