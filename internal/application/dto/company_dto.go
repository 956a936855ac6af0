package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	RazonSocial       string     `json:"razon_social" validate:"required,min=1,max=200"`
	CUIT              string     `json:"cuit" validate:"required,len=11,numeric"`
	Domicilio         string     `json:"domicilio" validate:"required"`
	InicioActividades *time.Time `json:"inicio_actividades,omitempty"`
	Rubro             string     `json:"rubro,omitempty"`
	LogoURL           string     `json:"logo_url,omitempty"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	RazonSocial       *string    `json:"razon_social" validate:"omitempty,min=1,max=200"`
	Domicilio         *string    `json:"domicilio"`
	InicioActividades *time.Time `json:"inicio_actividades"`
	Rubro             *string    `json:"rubro"`
	LogoURL           *string    `json:"logo_url"`
	Active            *bool      `json:"active"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                string     `json:"id"`
	RazonSocial       string     `json:"razon_social"`
	CUIT              string     `json:"cuit"`
	Domicilio         string     `json:"domicilio"`
	InicioActividades *time.Time `json:"inicio_actividades,omitempty"`
	Rubro             string     `json:"rubro,omitempty"`
	LogoURL           string     `json:"logo_url,omitempty"`
	Active            bool       `json:"active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CompanyListResponse lista de empresas del tenant.
type CompanyListResponse struct {
	Results int               `json:"results"`
	Items   []CompanyResponse `json:"items"`
}
