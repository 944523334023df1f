package models

// Status enumerations live in two representations: the compact codes
// stored in postgres enum columns and the Portuguese display labels the
// client renders. The maps below are total in both directions; unknown
// values pass through unchanged so a schema addition never blanks a field.

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// Lead pipeline codes.
const (
	LeadStatusNew         = "NEW"
	LeadStatusContacted   = "CONTACTED"
	LeadStatusTrial       = "TRIAL"
	LeadStatusNegotiation = "NEGOTIATION"
	LeadStatusWon         = "WON"
	LeadStatusLost        = "LOST"
)

// Payment status codes.
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
	PaymentStatusOverdue = "OVERDUE"
)

// Timeline log types (stored as-is, no label remap).
const (
	LogTypeSystem    = "Sistema"
	LogTypeWhatsApp  = "WhatsApp"
	LogTypeFinancial = "Financeiro"
	LogTypeNote      = "Nota"
)

var leadStatusLabels = map[string]string{
	LeadStatusNew:         "Novo Lead",
	LeadStatusContacted:   "Contato Feito",
	LeadStatusTrial:       "Aula Exp. Agendada",
	LeadStatusNegotiation: "Negociação",
	LeadStatusWon:         "Matriculado",
	LeadStatusLost:        "Perdido",
}

var leadStatusCodes = invert(leadStatusLabels)

var paymentStatusLabels = map[string]string{
	PaymentStatusPending: "Pendente",
	PaymentStatusPaid:    "Pago",
	PaymentStatusOverdue: "Atrasado",
}

var paymentStatusCodes = invert(paymentStatusLabels)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// LeadStatusLabel translates a stored code to its display label.
func LeadStatusLabel(code string) string {
	if label, ok := leadStatusLabels[code]; ok {
		return label
	}
	return code
}

// LeadStatusCode translates a display label back to its stored code.
func LeadStatusCode(label string) string {
	if code, ok := leadStatusCodes[label]; ok {
		return code
	}
	return label
}

// PaymentStatusLabel translates a stored code to its display label.
func PaymentStatusLabel(code string) string {
	if label, ok := paymentStatusLabels[code]; ok {
		return label
	}
	return code
}

// PaymentStatusCode translates a display label back to its stored code.
func PaymentStatusCode(label string) string {
	if code, ok := paymentStatusCodes[label]; ok {
		return code
	}
	return label
}

// LeadStatusCodes lists every pipeline code, in pipeline order with the
// absorbing LOST state last.
func LeadStatusCodes() []string {
	return []string{
		LeadStatusNew,
		LeadStatusContacted,
		LeadStatusTrial,
		LeadStatusNegotiation,
		LeadStatusWon,
		LeadStatusLost,
	}
}

// PaymentStatusCodes lists every payment status code.
func PaymentStatusCodes() []string {
	return []string{PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue}
}
