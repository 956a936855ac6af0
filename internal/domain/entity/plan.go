package entity

// Planes de suscripción disponibles.
const (
	PlanInicial     = "INICIAL"
	PlanProfesional = "PROFESIONAL"
	PlanEstudio     = "ESTUDIO"
	PlanCorporate   = "CORPORATE"
)

// Unlimited marca un límite sin tope para el recurso.
const Unlimited = -1

// PlanLimits límites de un plan: empresas (total) y recibos (por mes calendario).
type PlanLimits struct {
	Companies int
	Receipts  int
}

// CompaniesUnlimited informa si el plan no limita la cantidad de empresas.
func (l PlanLimits) CompaniesUnlimited() bool { return l.Companies == Unlimited }

// ReceiptsUnlimited informa si el plan no limita los recibos mensuales.
func (l PlanLimits) ReceiptsUnlimited() bool { return l.Receipts == Unlimited }

// planLimits tabla de límites por plan.
var planLimits = map[string]PlanLimits{
	PlanInicial:     {Companies: 1, Receipts: 5},
	PlanProfesional: {Companies: 10, Receipts: 50},
	PlanEstudio:     {Companies: 50, Receipts: 500},
	PlanCorporate:   {Companies: Unlimited, Receipts: 2000},
}

// LimitsForPlan devuelve los límites del plan. Un plan desconocido o vacío
// cae al plan INICIAL, el más restrictivo.
func LimitsForPlan(plan string) (string, PlanLimits) {
	if limits, ok := planLimits[plan]; ok {
		return plan, limits
	}
	return PlanInicial, planLimits[PlanInicial]
}
