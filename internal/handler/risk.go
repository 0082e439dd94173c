package handler

import (
	"context"
	"encoding/json"

	"pharmaguard/functions/internal/domain"
	"pharmaguard/functions/internal/metrics"
	"pharmaguard/functions/internal/risk"
)

// Pointer fields distinguish "absent" from "zero" so the documented
// defaults only apply when the key is missing.
type sensorReadingRequest struct {
	Temperature *float64 `json:"temperature"`
	Vibration   *float64 `json:"vibration"`
}

// RiskCalculator returns the risk-calculator function: decode a sensor
// reading, classify it, answer with the assessment.
func RiskCalculator() Func {
	return func(ctx context.Context, req []byte) []byte {
		var in sensorReadingRequest
		if err := json.Unmarshal(req, &in); err != nil {
			return errorJSON(err)
		}

		reading := &domain.SensorReading{
			TemperatureC: domain.DefaultTemperatureC,
			VibrationG:   domain.DefaultVibrationG,
		}
		if in.Temperature != nil {
			reading.TemperatureC = *in.Temperature
		}
		if in.Vibration != nil {
			reading.VibrationG = *in.Vibration
		}

		assessment := risk.Assess(reading)
		if assessment.ShouldAlert {
			metrics.AssessmentsUnsafe.Add(1)
		}

		out, err := json.Marshal(assessment)
		if err != nil {
			return errorJSON(err)
		}
		return out
	}
}
