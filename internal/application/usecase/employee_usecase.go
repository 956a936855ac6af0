package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/recibospro/recibos-api/internal/application/dto"
	"github.com/recibospro/recibos-api/internal/domain"
	"github.com/recibospro/recibos-api/internal/domain/entity"
	"github.com/recibospro/recibos-api/internal/domain/repository"
)

// EmployeeUseCase aplica reglas de negocio para empleados. Todo pasa por la
// empresa: un empleado nunca se crea contra una empresa de otro tenant.
type EmployeeUseCase struct {
	repo        repository.EmployeeRepository
	companyRepo repository.CompanyRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, companyRepo repository.CompanyRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, companyRepo: companyRepo}
}

// Create da de alta un empleado en una empresa del tenant. La unicidad de
// (empresa, legajo) y (empresa, cuil) la garantiza la base; acá solo validamos
// forma y pertenencia.
func (uc *EmployeeUseCase) Create(ctx context.Context, tenantID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.CompanyID == "" || in.Legajo == "" || in.Nombre == "" || in.Apellido == "" || in.Cargo == "" {
		return nil, domain.ErrInvalidInput
	}
	if !esCUITValido(in.CUIL) { // CUIL y CUIT comparten formato: 11 dígitos
		return nil, fmt.Errorf("%w: el CUIL debe tener exactamente 11 dígitos", domain.ErrInvalidInput)
	}
	if in.SueldoBruto.IsNegative() {
		return nil, fmt.Errorf("%w: el sueldo bruto no puede ser negativo", domain.ErrInvalidInput)
	}

	company, err := uc.companyRepo.GetByIDAndUser(ctx, in.CompanyID, tenantID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	employee := &entity.Employee{
		ID:                    uuid.New().String(),
		UserID:                tenantID,
		CompanyID:             company.ID,
		Legajo:                in.Legajo,
		CUIL:                  in.CUIL,
		Nombre:                in.Nombre,
		Apellido:              in.Apellido,
		FechaNacimiento:       in.FechaNacimiento,
		FechaIngreso:          in.FechaIngreso,
		Cargo:                 in.Cargo,
		ModalidadContratacion: in.ModalidadContratacion,
		CBU:                   in.CBU,
		Banco:                 in.Banco,
		SueldoBruto:           in.SueldoBruto,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employeeToResponse(employee), nil
}

// GetByID obtiene un empleado del tenant.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByIDAndUser(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return employeeToResponse(employee), nil
}

// List lista empleados del tenant, opcionalmente filtrando por empresa.
func (uc *EmployeeUseCase) List(ctx context.Context, tenantID, companyID string, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	total, err := uc.repo.CountByUser(ctx, tenantID, companyID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByUser(ctx, tenantID, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *employeeToResponse(e))
	}
	return &dto.EmployeeListResponse{
		Results: len(items),
		Items:   items,
		Page:    dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func employeeToResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:                    e.ID,
		CompanyID:             e.CompanyID,
		Legajo:                e.Legajo,
		CUIL:                  e.CUIL,
		Nombre:                e.Nombre,
		Apellido:              e.Apellido,
		FechaNacimiento:       e.FechaNacimiento,
		FechaIngreso:          e.FechaIngreso,
		Cargo:                 e.Cargo,
		ModalidadContratacion: e.ModalidadContratacion,
		CBU:                   e.CBU,
		Banco:                 e.Banco,
		SueldoBruto:           e.SueldoBruto,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
}
