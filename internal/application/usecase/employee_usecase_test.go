package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recibospro/recibos-api/internal/application/dto"
	"github.com/recibospro/recibos-api/internal/application/usecase"
	"github.com/recibospro/recibos-api/internal/domain"
	"github.com/recibospro/recibos-api/internal/domain/entity"
	"github.com/recibospro/recibos-api/internal/domain/repository"
)

type memEmployees struct {
	mu    sync.Mutex
	items map[string]entity.Employee
}

var _ repository.EmployeeRepository = (*memEmployees)(nil)

func newMemEmployees() *memEmployees {
	return &memEmployees{items: make(map[string]entity.Employee)}
}

func (r *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[e.ID] = *e
	return nil
}

func (r *memEmployees) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.items[id]; ok && e.UserID == userID {
		return &e, nil
	}
	return nil, nil
}

func (r *memEmployees) ListByUser(_ context.Context, userID, companyID string, limit, offset int) ([]*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Employee
	for _, e := range r.items {
		if e.UserID == userID && (companyID == "" || e.CompanyID == companyID) {
			e := e
			list = append(list, &e)
		}
	}
	return list, nil
}

func (r *memEmployees) CountByUser(_ context.Context, userID, companyID string) (int, error) {
	list, _ := r.ListByUser(context.Background(), userID, companyID, 0, 0)
	return len(list), nil
}

func setupEmployeeUC(t *testing.T) (*usecase.EmployeeUseCase, *memEmployees, string) {
	t.Helper()
	companies := newMemCompanies()
	company := entity.Company{ID: "emp-1", UserID: "t1", RazonSocial: "Estudio Demo SRL", CUIT: "30712345678", Domicilio: "X"}
	require.NoError(t, companies.Create(context.Background(), &company))

	employees := newMemEmployees()
	return usecase.NewEmployeeUseCase(employees, companies), employees, company.ID
}

func validEmployee(companyID string) dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		CompanyID:             companyID,
		Legajo:                "0042",
		CUIL:                  "20301234567",
		Nombre:                "Juana",
		Apellido:              "Molina",
		FechaNacimiento:       time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC),
		FechaIngreso:          time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		Cargo:                 "Analista",
		ModalidadContratacion: "Tiempo Indeterminado",
		CBU:                   "2850590940090418135201",
		SueldoBruto:           decimal.NewFromInt(100000),
	}
}

func TestEmployeeCreate_OK(t *testing.T) {
	uc, employees, companyID := setupEmployeeUC(t)

	out, err := uc.Create(context.Background(), "t1", validEmployee(companyID))
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, companyID, out.CompanyID)

	stored, err := employees.GetByIDAndUser(context.Background(), out.ID, "t1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "t1", stored.UserID, "el empleado lleva el tenant redundante")
}

// La empresa tiene que ser del tenant: contra la empresa de otro, NotFound.
func TestEmployeeCreate_EmpresaAjena(t *testing.T) {
	uc, employees, companyID := setupEmployeeUC(t)

	_, err := uc.Create(context.Background(), "t2", validEmployee(companyID))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, employees.items)
}

func TestEmployeeCreate_CUILInvalido(t *testing.T) {
	uc, _, companyID := setupEmployeeUC(t)

	in := validEmployee(companyID)
	in.CUIL = "20-30123456-7"
	_, err := uc.Create(context.Background(), "t1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeCreate_SueldoNegativo(t *testing.T) {
	uc, _, companyID := setupEmployeeUC(t)

	in := validEmployee(companyID)
	in.SueldoBruto = decimal.NewFromInt(-1)
	_, err := uc.Create(context.Background(), "t1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeList_FiltraPorEmpresaYTenant(t *testing.T) {
	uc, employees, companyID := setupEmployeeUC(t)

	_, err := uc.Create(context.Background(), "t1", validEmployee(companyID))
	require.NoError(t, err)

	// Empleado de otro tenant sembrado directo en el store.
	require.NoError(t, employees.Create(context.Background(), &entity.Employee{
		ID: "ajeno", UserID: "t2", CompanyID: "otra",
	}))

	out, err := uc.List(context.Background(), "t1", companyID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Results)
	assert.Equal(t, 20, out.Page.Limit, "paginación con default")

	vacio, err := uc.List(context.Background(), "t1", "empresa-inexistente", dto.PageRequest{})
	require.NoError(t, err)
	assert.Zero(t, vacio.Results)
}

func TestEmployeeGetByID_AisladoPorTenant(t *testing.T) {
	uc, _, companyID := setupEmployeeUC(t)
	out, err := uc.Create(context.Background(), "t1", validEmployee(companyID))
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), "t2", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
