package entity

import "time"

// Company representa una empresa administrada por un tenant.
// El CUIT es único a nivel sistema (11 dígitos, validado en el use case y por constraint en DB).
type Company struct {
	ID                string
	UserID            string // tenant dueño; toda consulta filtra por él
	RazonSocial       string
	CUIT              string // exactamente 11 dígitos
	Domicilio         string
	InicioActividades *time.Time // nil = no informado
	Rubro             string
	LogoURL           string
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
