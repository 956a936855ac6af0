package postgres

import (
	"context"
	"fmt"

	"github.com/recibospro/recibos-api/internal/domain"
	"github.com/recibospro/recibos-api/internal/domain/entity"
	"github.com/recibospro/recibos-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db Querier) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const employeeColumns = `id, user_id, company_id, legajo, cuil, nombre, apellido,
		fecha_nacimiento, fecha_ingreso, cargo, modalidad_contratacion,
		cbu, banco, sueldo_bruto, created_at, updated_at`

// Create persiste un nuevo empleado. Las unicidades (company, legajo) y
// (company, cuil) las garantizan constraints en la base.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(ctx, query,
		employee.ID, employee.UserID, employee.CompanyID, employee.Legajo, employee.CUIL,
		employee.Nombre, employee.Apellido, employee.FechaNacimiento, employee.FechaIngreso,
		employee.Cargo, employee.ModalidadContratacion, employee.CBU, employee.Banco,
		employee.SueldoBruto, employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene un empleado por ID acotado al tenant.
func (r *EmployeeRepo) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND user_id = $2`
	var e entity.Employee
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&e.ID, &e.UserID, &e.CompanyID, &e.Legajo, &e.CUIL,
		&e.Nombre, &e.Apellido, &e.FechaNacimiento, &e.FechaIngreso,
		&e.Cargo, &e.ModalidadContratacion, &e.CBU, &e.Banco,
		&e.SueldoBruto, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// ListByUser lista empleados del tenant con paginación; companyID vacío = todas las empresas.
func (r *EmployeeRepo) ListByUser(ctx context.Context, userID, companyID string, limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE user_id = $1 AND ($2 = '' OR company_id = $2)
		ORDER BY apellido, nombre
		LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, userID, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.CompanyID, &e.Legajo, &e.CUIL,
			&e.Nombre, &e.Apellido, &e.FechaNacimiento, &e.FechaIngreso,
			&e.Cargo, &e.ModalidadContratacion, &e.CBU, &e.Banco,
			&e.SueldoBruto, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// CountByUser cuenta empleados del tenant; companyID vacío = todas las empresas.
func (r *EmployeeRepo) CountByUser(ctx context.Context, userID, companyID string) (int, error) {
	query := `SELECT COUNT(*) FROM employees WHERE user_id = $1 AND ($2 = '' OR company_id = $2)`
	var count int
	if err := r.db.QueryRow(ctx, query, userID, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return count, nil
}
