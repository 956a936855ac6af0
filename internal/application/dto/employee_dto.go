package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest entrada para dar de alta un empleado en una empresa del tenant.
type CreateEmployeeRequest struct {
	CompanyID             string          `json:"company_id" validate:"required"`
	Legajo                string          `json:"legajo" validate:"required"`
	CUIL                  string          `json:"cuil" validate:"required,len=11,numeric"`
	Nombre                string          `json:"nombre" validate:"required"`
	Apellido              string          `json:"apellido" validate:"required"`
	FechaNacimiento       time.Time       `json:"fecha_nacimiento" validate:"required"`
	FechaIngreso          time.Time       `json:"fecha_ingreso" validate:"required"`
	Cargo                 string          `json:"cargo" validate:"required"`
	ModalidadContratacion string          `json:"modalidad_contratacion" validate:"required"`
	CBU                   string          `json:"cbu" validate:"required"`
	Banco                 string          `json:"banco,omitempty"`
	SueldoBruto           decimal.Decimal `json:"sueldo_bruto"`
}

// EmployeeResponse empleado en respuestas.
type EmployeeResponse struct {
	ID                    string          `json:"id"`
	CompanyID             string          `json:"company_id"`
	Legajo                string          `json:"legajo"`
	CUIL                  string          `json:"cuil"`
	Nombre                string          `json:"nombre"`
	Apellido              string          `json:"apellido"`
	FechaNacimiento       time.Time       `json:"fecha_nacimiento"`
	FechaIngreso          time.Time       `json:"fecha_ingreso"`
	Cargo                 string          `json:"cargo"`
	ModalidadContratacion string          `json:"modalidad_contratacion"`
	CBU                   string          `json:"cbu"`
	Banco                 string          `json:"banco,omitempty"`
	SueldoBruto           decimal.Decimal `json:"sueldo_bruto"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Results int                `json:"results"`
	Items   []EmployeeResponse `json:"items"`
	Page    PageResponse       `json:"page"`
}
