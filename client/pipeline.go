package client

import "playjazz-backend/models"

// Pipeline statuses in display-label form, in funnel order. LOST sits
// outside the funnel: it is reachable by direct assignment from any
// non-terminal stage and absorbs.
var (
	LeadNew         = models.LeadStatusLabel(models.LeadStatusNew)
	LeadContacted   = models.LeadStatusLabel(models.LeadStatusContacted)
	LeadTrial       = models.LeadStatusLabel(models.LeadStatusTrial)
	LeadNegotiation = models.LeadStatusLabel(models.LeadStatusNegotiation)
	LeadWon         = models.LeadStatusLabel(models.LeadStatusWon)
	LeadLost        = models.LeadStatusLabel(models.LeadStatusLost)
)

// PipelineOrder lists the board columns left to right.
func PipelineOrder() []string {
	return []string{LeadNew, LeadContacted, LeadTrial, LeadNegotiation, LeadWon, LeadLost}
}

// IsTerminalStatus reports whether no further pipeline action applies.
func IsTerminalStatus(status string) bool {
	return status == LeadWon || status == LeadLost
}

// NextStatus returns the single-step advance target. ok is false at a
// terminal status or for an unknown one; callers treat that as a no-op.
func NextStatus(status string) (next string, ok bool) {
	if IsTerminalStatus(status) {
		return status, false
	}
	switch status {
	case LeadNew:
		return LeadContacted, true
	case LeadContacted:
		return LeadTrial, true
	case LeadTrial:
		return LeadNegotiation, true
	case LeadNegotiation:
		return LeadWon, true
	}
	return status, false
}
