package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recibospro/recibos-api/internal/application/dto"
	"github.com/recibospro/recibos-api/internal/application/ports"
	"github.com/recibospro/recibos-api/internal/application/subscription"
	"github.com/recibospro/recibos-api/internal/application/usecase"
	"github.com/recibospro/recibos-api/internal/domain"
	"github.com/recibospro/recibos-api/internal/domain/entity"
	"github.com/recibospro/recibos-api/internal/domain/repository"
)

// memCompanies fake en memoria del puerto de empresas; guarda por valor.
type memCompanies struct {
	mu    sync.Mutex
	items map[string]entity.Company
}

var _ repository.CompanyRepository = (*memCompanies)(nil)

func newMemCompanies() *memCompanies {
	return &memCompanies{items: make(map[string]entity.Company)}
}

func (r *memCompanies) Create(_ context.Context, c *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID] = *c
	return nil
}

func (r *memCompanies) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.items[id]; ok && c.UserID == userID {
		return &c, nil
	}
	return nil, nil
}

func (r *memCompanies) GetByCUIT(_ context.Context, cuit string) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.CUIT == cuit {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCompanies) Update(_ context.Context, c *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID] = *c
	return nil
}

func (r *memCompanies) ListByUser(_ context.Context, userID string) ([]*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Company
	for _, c := range r.items {
		if c.UserID == userID {
			c := c
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *memCompanies) CountByUser(_ context.Context, userID string) (int, error) {
	list, _ := r.ListByUser(context.Background(), userID)
	return len(list), nil
}

func (r *memCompanies) Delete(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.items[id]; ok && c.UserID == userID {
		delete(r.items, id)
	}
	return nil
}

type stubUsers struct{ plan string }

var _ repository.UserRepository = (*stubUsers)(nil)

func (s *stubUsers) Create(context.Context, *entity.User) error { panic("no usado") }
func (s *stubUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return &entity.User{ID: id, Plan: s.plan}, nil
}
func (s *stubUsers) GetByEmail(context.Context, string) (*entity.User, error) { panic("no usado") }

// stubTxRunner corre el callback con los mismos fakes, serializado global.
type stubTxRunner struct {
	mu        sync.Mutex
	users     repository.UserRepository
	companies repository.CompanyRepository
}

var _ ports.TenantTxRunner = (*stubTxRunner)(nil)

func (r *stubTxRunner) RunTenant(_ context.Context, _ string, fn func(ports.TxRepos) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(ports.TxRepos{Users: r.users, Companies: r.companies})
}

func newCompanyUC(plan string) (*usecase.CompanyUseCase, *memCompanies) {
	companies := newMemCompanies()
	runner := &stubTxRunner{users: &stubUsers{plan: plan}, companies: companies}
	return usecase.NewCompanyUseCase(companies, runner, subscription.NewEnforcer()), companies
}

func validCompany() dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		RazonSocial: "Estudio Demo SRL",
		CUIT:        "30712345678",
		Domicilio:   "Av. Corrientes 1234, CABA",
	}
}

func TestCompanyCreate_OK(t *testing.T) {
	uc, companies := newCompanyUC(entity.PlanProfesional)

	out, err := uc.Create(context.Background(), "t1", validCompany())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Active)

	stored, err := companies.GetByIDAndUser(context.Background(), out.ID, "t1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "30712345678", stored.CUIT)
}

func TestCompanyCreate_CUITInvalido(t *testing.T) {
	uc, companies := newCompanyUC(entity.PlanProfesional)

	for _, cuit := range []string{"", "123", "3071234567X", "30-71234567-8", "307123456789"} {
		in := validCompany()
		in.CUIT = cuit
		_, err := uc.Create(context.Background(), "t1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "CUIT %q debe rechazarse", cuit)
	}
	assert.Empty(t, companies.items, "ningún rechazo debe dejar registro")
}

func TestCompanyCreate_CUITDuplicado(t *testing.T) {
	uc, _ := newCompanyUC(entity.PlanProfesional)

	_, err := uc.Create(context.Background(), "t1", validCompany())
	require.NoError(t, err)

	// Mismo CUIT, otro tenant: el CUIT es único a nivel sistema.
	_, err = uc.Create(context.Background(), "t2", validCompany())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Plan INICIAL: límite de 1 empresa. El segundo intento no crea nada.
func TestCompanyCreate_CuotaDelPlan(t *testing.T) {
	uc, companies := newCompanyUC(entity.PlanInicial)

	_, err := uc.Create(context.Background(), "t1", validCompany())
	require.NoError(t, err)

	segunda := validCompany()
	segunda.CUIT = "30787654321"
	_, err = uc.Create(context.Background(), "t1", segunda)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.Len(t, companies.items, 1)
}

func TestCompanyGetByID_DeOtroTenant_EsNotFound(t *testing.T) {
	uc, _ := newCompanyUC(entity.PlanProfesional)
	out, err := uc.Create(context.Background(), "t1", validCompany())
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), "t2", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyUpdate_ActualizaSoloLoInformado(t *testing.T) {
	uc, _ := newCompanyUC(entity.PlanProfesional)
	out, err := uc.Create(context.Background(), "t1", validCompany())
	require.NoError(t, err)

	nuevoDomicilio := "Av. Santa Fe 999, CABA"
	updated, err := uc.Update(context.Background(), "t1", out.ID, dto.UpdateCompanyRequest{
		Domicilio: &nuevoDomicilio,
	})
	require.NoError(t, err)
	assert.Equal(t, nuevoDomicilio, updated.Domicilio)
	assert.Equal(t, out.RazonSocial, updated.RazonSocial, "lo no informado queda igual")
	assert.Equal(t, out.CUIT, updated.CUIT, "el CUIT no se edita")
}

func TestCompanyDelete_Inexistente(t *testing.T) {
	uc, _ := newCompanyUC(entity.PlanProfesional)
	err := uc.Delete(context.Background(), "t1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
