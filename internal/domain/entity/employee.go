package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee pertenece a exactamente una Company y, de forma redundante para
// aislamiento, al tenant dueño. (company, legajo) y (company, cuil) son únicos.
type Employee struct {
	ID                    string
	UserID                string // redundante a propósito: el filtro por tenant nunca depende de un join
	CompanyID             string
	Legajo                string // número de legajo interno, único por empresa
	CUIL                  string // exactamente 11 dígitos, único por empresa
	Nombre                string
	Apellido              string
	FechaNacimiento       time.Time
	FechaIngreso          time.Time
	Cargo                 string
	ModalidadContratacion string // ej: "Tiempo Indeterminado", "Plazo Fijo"
	CBU                   string
	Banco                 string // opcional
	SueldoBruto           decimal.Decimal
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
