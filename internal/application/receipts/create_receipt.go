// Package receipts implementa los casos de uso del recibo de sueldo: emisión
// con snapshot congelado, listados y render del documento PDF.
package receipts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/recibospro/recibos-api/internal/application/dto"
	"github.com/recibospro/recibos-api/internal/application/ports"
	"github.com/recibospro/recibos-api/internal/application/subscription"
	"github.com/recibospro/recibos-api/internal/domain"
	"github.com/recibospro/recibos-api/internal/domain/entity"
	"github.com/recibospro/recibos-api/internal/domain/payroll"
)

// CreateReceiptUseCase emite un recibo de sueldo: cuota, resolución de
// empleado y empresa acotada al tenant, snapshot, totales y persistencia,
// todo dentro de una única transacción serializada por tenant. Si cualquier
// paso falla no queda ningún recibo a medias.
type CreateReceiptUseCase struct {
	txRunner ports.TenantTxRunner
	quota    *subscription.Enforcer
	now      func() time.Time
}

// NewCreateReceiptUseCase construye el caso de uso.
func NewCreateReceiptUseCase(txRunner ports.TenantTxRunner, quota *subscription.Enforcer) *CreateReceiptUseCase {
	return &CreateReceiptUseCase{txRunner: txRunner, quota: quota, now: time.Now}
}

// CreateReceipt crea el recibo para el empleado indicado.
//
// El snapshot se copia una única vez, acá, de forma sincrónica con el alta:
// el recibo es un documento legal que fija hechos a su fecha de emisión, y
// ediciones posteriores del empleado o la empresa no deben tocarlo jamás.
func (uc *CreateReceiptUseCase) CreateReceipt(ctx context.Context, tenantID string, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.EmployeeID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Periodo.Mes < 1 || in.Periodo.Mes > 12 || in.Periodo.Anio < 2000 || in.Periodo.Anio > 2100 {
		return nil, fmt.Errorf("%w: período %d/%d", domain.ErrInvalidInput, in.Periodo.Mes, in.Periodo.Anio)
	}

	items := make([]entity.ReceiptItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Codigo == "" || it.Concepto == "" {
			return nil, fmt.Errorf("%w: ítem sin código o concepto", domain.ErrInvalidInput)
		}
		items = append(items, entity.ReceiptItem{
			Codigo:              it.Codigo,
			Concepto:            it.Concepto,
			Unidades:            it.Unidades,
			MontoRemunerativo:   it.MontoRemunerativo,
			MontoNoRemunerativo: it.MontoNoRemunerativo,
			MontoDeduccion:      it.MontoDeduccion,
		})
	}

	// Totales fuera de la tx: cálculo puro, y si los montos vienen mal
	// rechazamos antes de tomar el lock del tenant.
	totales, err := payroll.CalcularTotales(items)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	var receipt *entity.Receipt

	err = uc.txRunner.RunTenant(ctx, tenantID, func(repos ports.TxRepos) error {
		// Cuota mensual evaluada fresca dentro de la tx serializada:
		// contar-y-crear es atómico frente a requests concurrentes.
		if err := uc.quota.CheckReceiptQuota(ctx, repos, tenantID, now); err != nil {
			return err
		}

		employee, err := repos.Employees.GetByIDAndUser(ctx, in.EmployeeID, tenantID)
		if err != nil {
			return fmt.Errorf("obtener empleado: %w", err)
		}
		if employee == nil {
			return fmt.Errorf("%w: empleado", domain.ErrNotFound)
		}

		// Se resuelve la empresa también acotada al tenant: defiende contra
		// una referencia colgante o ajena en employee.CompanyID.
		company, err := repos.Companies.GetByIDAndUser(ctx, employee.CompanyID, tenantID)
		if err != nil {
			return fmt.Errorf("obtener empresa: %w", err)
		}
		if company == nil {
			return fmt.Errorf("%w: empresa asociada", domain.ErrNotFound)
		}

		receipt = &entity.Receipt{
			ID:         uuid.New().String(),
			UserID:     tenantID,
			CompanyID:  company.ID,
			EmployeeID: employee.ID,
			Periodo:    in.Periodo,
			EmployeeSnapshot: entity.EmployeeSnapshot{
				Nombre:       employee.Nombre,
				Apellido:     employee.Apellido,
				CUIL:         employee.CUIL,
				Legajo:       employee.Legajo,
				Cargo:        employee.Cargo,
				CBU:          employee.CBU,
				Banco:        employee.Banco,
				FechaIngreso: employee.FechaIngreso,
				SueldoBasico: employee.SueldoBruto,
			},
			CompanySnapshot: entity.CompanySnapshot{
				RazonSocial: company.RazonSocial,
				CUIT:        company.CUIT,
				Domicilio:   company.Domicilio,
			},
			Items:     items,
			Totales:   totales,
			CreatedAt: now,
		}
		if err := repos.Receipts.Create(ctx, receipt); err != nil {
			return fmt.Errorf("persistir recibo: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receiptToResponse(receipt), nil
}

func receiptToResponse(r *entity.Receipt) *dto.ReceiptResponse {
	if r == nil {
		return nil
	}
	return &dto.ReceiptResponse{
		ID:               r.ID,
		CompanyID:        r.CompanyID,
		EmployeeID:       r.EmployeeID,
		Periodo:          r.Periodo,
		EmployeeSnapshot: r.EmployeeSnapshot,
		CompanySnapshot:  r.CompanySnapshot,
		Items:            r.Items,
		Totales:          r.Totales,
		CreatedAt:        r.CreatedAt,
	}
}
