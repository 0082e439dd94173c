package risk

import (
	"math"

	"pharmaguard/functions/internal/domain"
)

// Assess classifies a single sensor reading against the default rule set.
// It is a pure function: no state survives the call.
func Assess(reading *domain.SensorReading) *domain.RiskAssessment {
	assessment := &domain.RiskAssessment{
		Status:      domain.StatusSafe,
		Issues:      []string{},
		AuditEngine: domain.AuditEngine,
	}

	loss := 0.0
	for _, rule := range domain.DefaultRiskRules {
		if !rule.Evaluator(reading) {
			continue
		}
		assessment.Issues = append(assessment.Issues, rule.Issue(reading))
		loss += rule.Loss(reading)
		assessment.Status = rule.Status
	}

	// Half-away-from-zero to 2 decimals.
	assessment.EstimatedLoss = math.Round(loss*100) / 100
	assessment.ShouldAlert = len(assessment.Issues) > 0

	return assessment
}
