package postgres

import (
	"context"
	"fmt"

	"github.com/recibospro/recibos-api/internal/domain"
	"github.com/recibospro/recibos-api/internal/domain/entity"
	"github.com/recibospro/recibos-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db Querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

const companyColumns = `id, user_id, razon_social, cuit, domicilio, inicio_actividades, rubro, logo_url, active, created_at, updated_at`

// Create persiste una nueva empresa del tenant.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.UserID, company.RazonSocial, company.CUIT,
		company.Domicilio, company.InicioActividades, company.Rubro, company.LogoURL,
		company.Active, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene una empresa por ID acotada al tenant.
func (r *CompanyRepo) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 AND user_id = $2`
	return r.scanOne(ctx, query, id, userID)
}

// GetByCUIT obtiene una empresa por CUIT (único a nivel sistema).
func (r *CompanyRepo) GetByCUIT(ctx context.Context, cuit string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE cuit = $1`
	return r.scanOne(ctx, query, cuit)
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies
		   SET razon_social = $3, domicilio = $4, inicio_actividades = $5,
		       rubro = $6, logo_url = $7, active = $8, updated_at = $9
		 WHERE id = $1 AND user_id = $2`
	cmd, err := r.db.Exec(ctx, query,
		company.ID, company.UserID, company.RazonSocial, company.Domicilio,
		company.InicioActividades, company.Rubro, company.LogoURL, company.Active,
		company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser devuelve las empresas del tenant.
func (r *CompanyRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.RazonSocial, &c.CUIT, &c.Domicilio,
			&c.InicioActividades, &c.Rubro, &c.LogoURL, &c.Active,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CountByUser cuenta las empresas del tenant (lo usa la cuota del plan).
func (r *CompanyRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return count, nil
}

// Delete elimina una empresa del tenant.
func (r *CompanyRepo) Delete(ctx context.Context, id, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

func (r *CompanyRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Company, error) {
	var c entity.Company
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.UserID, &c.RazonSocial, &c.CUIT, &c.Domicilio,
		&c.InicioActividades, &c.Rubro, &c.LogoURL, &c.Active,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
