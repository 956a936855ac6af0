package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "ADMIN"
	RoleAccountant = "ACCOUNTANT"
)

// Estados de suscripción.
const (
	SubscriptionActive   = "ACTIVE"
	SubscriptionPastDue  = "PAST_DUE"
	SubscriptionCanceled = "CANCELED"
)

// User representa al tenant del sistema: el contador o estudio que emite recibos.
// Todo recurso (empresa, empleado, recibo) lleva su ID y se filtra por él sin excepción.
type User struct {
	ID                 string
	FirstName          string
	LastName           string
	Email              string
	PasswordHash       string // bcrypt hash, nunca plano en dominio después de persistir
	Role               string // ADMIN, ACCOUNTANT
	Plan               string // ver plan.go
	SubscriptionStatus string // ACTIVE, PAST_DUE, CANCELED
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
