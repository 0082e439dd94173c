package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults applied when a sensor field is absent from the request.
const (
	DefaultTemperatureC = 4.0
	DefaultVibrationG   = 0.0
)

// AuditEngine identifies the evaluating engine in every assessment.
const AuditEngine = "OpenFaaS"

type SensorReading struct {
	TemperatureC float64
	VibrationG   float64
}

type RiskStatus string

const (
	StatusSafe     RiskStatus = "SAFE"
	StatusWarning  RiskStatus = "WARNING"
	StatusCritical RiskStatus = "CRITICAL"
)

type RiskAssessment struct {
	Status        RiskStatus `json:"status"`
	Issues        []string   `json:"issues"`
	EstimatedLoss float64    `json:"estimated_loss"`
	ShouldAlert   bool       `json:"should_alert"`
	AuditEngine   string     `json:"audit_engine"`
}

type RiskRule struct {
	Status    RiskStatus
	Evaluator func(r *SensorReading) bool
	Issue     func(r *SensorReading) string
	Loss      func(r *SensorReading) float64
}

// DefaultRiskRules are evaluated in order; a later rule's status overwrites
// an earlier one, so a shock event always ends up CRITICAL even when the
// temperature rule fired first. Both thresholds are strict.
var DefaultRiskRules = []RiskRule{
	{
		Status: StatusWarning,
		Evaluator: func(r *SensorReading) bool {
			return r.TemperatureC > 8.0
		},
		Issue: func(r *SensorReading) string {
			return fmt.Sprintf("Temperature: %s°C", FormatReading(r.TemperatureC))
		},
		Loss: func(r *SensorReading) float64 {
			return (r.TemperatureC - 8.0) * 150
		},
	},
	{
		Status: StatusCritical,
		Evaluator: func(r *SensorReading) bool {
			return r.VibrationG > 4.0
		},
		Issue: func(r *SensorReading) string {
			return fmt.Sprintf("Shock: %sG", FormatReading(r.VibrationG))
		},
		Loss: func(r *SensorReading) float64 {
			return r.VibrationG * 100
		},
	},
}

// FormatReading renders a sensor value the way upstream dashboards expect:
// shortest round-trip form, but integral values keep a trailing ".0"
// (a reading of 10 renders as "10.0", not "10").
func FormatReading(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
