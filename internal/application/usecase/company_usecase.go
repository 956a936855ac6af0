package usecase

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
	"github.com/recibospro/recibos-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas del tenant.
// El alta pasa por la cuota del plan dentro de la transacción serializada.
type CompanyUseCase struct {
	repo     repository.CompanyRepository
	txRunner ports.TenantTxRunner
	quota    *subscription.Enforcer
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository, txRunner ports.TenantTxRunner, quota *subscription.Enforcer) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, txRunner: txRunner, quota: quota}
}

// Create crea una empresa sujeta a la cuota del plan. Devuelve
// ErrQuotaExceeded al llegar al límite y ErrDuplicate si el CUIT ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, tenantID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.RazonSocial == "" || in.Domicilio == "" {
		return nil, domain.ErrInvalidInput
	}
	if !esCUITValido(in.CUIT) {
		return nil, fmt.Errorf("%w: el CUIT debe tener exactamente 11 dígitos", domain.ErrInvalidInput)
	}

	now := time.Now()
	company := &entity.Company{
		ID:                uuid.New().String(),
		UserID:            tenantID,
		RazonSocial:       in.RazonSocial,
		CUIT:              in.CUIT,
		Domicilio:         in.Domicilio,
		InicioActividades: in.InicioActividades,
		Rubro:             in.Rubro,
		LogoURL:           in.LogoURL,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := uc.txRunner.RunTenant(ctx, tenantID, func(repos ports.TxRepos) error {
		if err := uc.quota.CheckCompanyQuota(ctx, repos, tenantID); err != nil {
			return err
		}
		// El CUIT es único a nivel sistema; el constraint de DB es la última
		// línea de defensa, esto da un error legible antes.
		existing, err := repos.Companies.GetByCUIT(ctx, in.CUIT)
		if err != nil {
			return fmt.Errorf("verificar CUIT: %w", err)
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return repos.Companies.Create(ctx, company)
	})
	if err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// GetByID obtiene una empresa del tenant.
func (uc *CompanyUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByIDAndUser(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return companyToResponse(company), nil
}

// List lista las empresas del tenant.
func (uc *CompanyUseCase) List(ctx context.Context, tenantID string) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.ListByUser(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *companyToResponse(c))
	}
	return &dto.CompanyListResponse{Results: len(items), Items: items}, nil
}

// Update actualiza los campos informados de una empresa del tenant.
// El CUIT no se edita: cambiar la identidad fiscal es dar de alta otra empresa.
func (uc *CompanyUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByIDAndUser(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.RazonSocial != nil {
		company.RazonSocial = *in.RazonSocial
	}
	if in.Domicilio != nil {
		company.Domicilio = *in.Domicilio
	}
	if in.InicioActividades != nil {
		company.InicioActividades = in.InicioActividades
	}
	if in.Rubro != nil {
		company.Rubro = *in.Rubro
	}
	if in.LogoURL != nil {
		company.LogoURL = *in.LogoURL
	}
	if in.Active != nil {
		company.Active = *in.Active
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// Delete elimina una empresa del tenant (borrado duro).
func (uc *CompanyUseCase) Delete(ctx context.Context, tenantID, id string) error {
	company, err := uc.repo.GetByIDAndUser(ctx, id, tenantID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id, tenantID)
}

// esCUITValido exige exactamente 11 dígitos ASCII.
func esCUITValido(cuit string) bool {
	if len(cuit) != 11 {
		return false
	}
	for _, r := range cuit {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                c.ID,
		RazonSocial:       c.RazonSocial,
		CUIT:              c.CUIT,
		Domicilio:         c.Domicilio,
		InicioActividades: c.InicioActividades,
		Rubro:             c.Rubro,
		LogoURL:           c.LogoURL,
		Active:            c.Active,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
