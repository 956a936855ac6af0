package subscription_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recibospro/recibos-api/internal/application/subscription"
	"github.com/recibospro/recibos-api/internal/domain"
	"github.com/recibospro/recibos-api/internal/domain/entity"
	"github.com/recibospro/recibos-api/internal/domain/repository"
)

type stubUsersFull struct {
	user *entity.User
}

var _ repository.UserRepository = (*stubUsersFull)(nil)

func (s *stubUsersFull) Create(context.Context, *entity.User) error { panic("no usado") }
func (s *stubUsersFull) GetByID(context.Context, string) (*entity.User, error) {
	return s.user, nil
}
func (s *stubUsersFull) GetByEmail(context.Context, string) (*entity.User, error) {
	panic("no usado")
}

func TestGetUsage_ReportaUsoYPorcentajes(t *testing.T) {
	uc := subscription.NewUseCase(
		&stubUsersFull{user: &entity.User{ID: "t1", Plan: entity.PlanProfesional, SubscriptionStatus: entity.SubscriptionActive}},
		&stubCompanies{count: 5},  // límite 10 -> 50%
		&stubReceipts{count: 50},  // límite 50 -> 100%
	)

	report, err := uc.GetUsage(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, entity.PlanProfesional, report.Plan.Name)
	assert.Equal(t, entity.SubscriptionActive, report.Plan.Status)

	assert.Equal(t, 5, report.Usage.Companies.Used)
	assert.Equal(t, 10, report.Usage.Companies.Limit)
	assert.Equal(t, 50, report.Usage.Companies.Percentage)
	assert.False(t, report.Usage.Companies.IsUnlimited)

	assert.Equal(t, 50, report.Usage.Receipts.Used)
	assert.Equal(t, 100, report.Usage.Receipts.Percentage)

	now := time.Now()
	assert.Equal(t, int(now.Month()), report.Usage.Receipts.Period.Mes)
	assert.Equal(t, now.Year(), report.Usage.Receipts.Period.Anio)
}

func TestGetUsage_PorcentajeCapadoEn100(t *testing.T) {
	// Un tenant que quedó por encima del límite tras bajar de plan no debe
	// reportar más de 100%.
	uc := subscription.NewUseCase(
		&stubUsersFull{user: &entity.User{ID: "t1", Plan: entity.PlanInicial}},
		&stubCompanies{count: 7}, // límite 1
		&stubReceipts{count: 0},
	)

	report, err := uc.GetUsage(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, 100, report.Usage.Companies.Percentage)
}

func TestGetUsage_IlimitadoReportaBanderaYCero(t *testing.T) {
	uc := subscription.NewUseCase(
		&stubUsersFull{user: &entity.User{ID: "t1", Plan: entity.PlanCorporate}},
		&stubCompanies{count: 123},
		&stubReceipts{count: 0},
	)

	report, err := uc.GetUsage(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, report.Usage.Companies.IsUnlimited)
	assert.Equal(t, entity.Unlimited, report.Usage.Companies.Limit)
	assert.Equal(t, 0, report.Usage.Companies.Percentage)
}

func TestGetUsage_UsuarioInexistente(t *testing.T) {
	uc := subscription.NewUseCase(&stubUsersFull{user: nil}, &stubCompanies{}, &stubReceipts{})
	_, err := uc.GetUsage(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetUsage_EstadoPorDefectoActivo(t *testing.T) {
	uc := subscription.NewUseCase(
		&stubUsersFull{user: &entity.User{ID: "t1", Plan: entity.PlanInicial}},
		&stubCompanies{count: 0},
		&stubReceipts{count: 0},
	)
	report, err := uc.GetUsage(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionActive, report.Plan.Status)
}
