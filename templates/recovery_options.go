package templates

import (
	"aeron-recovery-service/internal/domain/entity"
)

// EstimatedRecoveryTime is the fixed estimate attached to every plan
const EstimatedRecoveryTime = "4-6 hours"

// RecoveryOptionTemplate describes one recovery action offered to operators
type RecoveryOptionTemplate struct {
	Type            string
	Description     string
	Cost            string
	PassengerImpact string
}

// defaultRecoveryOptions is the fixed rule set. It does not look at flight data.
var defaultRecoveryOptions = []RecoveryOptionTemplate{
	{
		Type:            "Aircraft Substitution",
		Description:     "Replace cancelled flights with available aircraft",
		Cost:            "$125,000",
		PassengerImpact: "Minimal delays",
	},
	{
		Type:            "Route Optimization",
		Description:     "Optimize routes to minimize delays",
		Cost:            "$75,000",
		PassengerImpact: "15-30 minute delays",
	},
}

// DefaultRecoveryOptions returns the standard option templates
func DefaultRecoveryOptions() []RecoveryOptionTemplate {
	out := make([]RecoveryOptionTemplate, len(defaultRecoveryOptions))
	copy(out, defaultRecoveryOptions)
	return out
}

// Render numbers the templates from 1 in order
func Render(tmpls []RecoveryOptionTemplate) []entity.RecoveryOption {
	options := make([]entity.RecoveryOption, 0, len(tmpls))
	for i, t := range tmpls {
		options = append(options, entity.RecoveryOption{
			ID:              i + 1,
			Type:            t.Type,
			Description:     t.Description,
			Cost:            t.Cost,
			PassengerImpact: t.PassengerImpact,
		})
	}
	return options
}
