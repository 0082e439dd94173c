package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmaguard/functions/internal/domain"
)

func TestAssess_SafeReading(t *testing.T) {
	a := Assess(&domain.SensorReading{TemperatureC: 4.0, VibrationG: 0.0})

	assert.Equal(t, domain.StatusSafe, a.Status)
	assert.Empty(t, a.Issues)
	assert.NotNil(t, a.Issues)
	assert.Equal(t, 0.0, a.EstimatedLoss)
	assert.False(t, a.ShouldAlert)
	assert.Equal(t, "OpenFaaS", a.AuditEngine)
}

func TestAssess_ThresholdsAreStrict(t *testing.T) {
	// Exactly at both thresholds: nothing triggers.
	a := Assess(&domain.SensorReading{TemperatureC: 8.0, VibrationG: 4.0})

	assert.Equal(t, domain.StatusSafe, a.Status)
	assert.Empty(t, a.Issues)
	assert.Equal(t, 0.0, a.EstimatedLoss)
	assert.False(t, a.ShouldAlert)
}

func TestAssess_TemperatureBreach(t *testing.T) {
	a := Assess(&domain.SensorReading{TemperatureC: 10.0, VibrationG: 0.0})

	assert.Equal(t, domain.StatusWarning, a.Status)
	assert.Equal(t, []string{"Temperature: 10.0°C"}, a.Issues)
	assert.Equal(t, 300.0, a.EstimatedLoss)
	assert.True(t, a.ShouldAlert)
}

func TestAssess_VibrationBreach(t *testing.T) {
	a := Assess(&domain.SensorReading{TemperatureC: 4.0, VibrationG: 5.0})

	assert.Equal(t, domain.StatusCritical, a.Status)
	assert.Equal(t, []string{"Shock: 5.0G"}, a.Issues)
	assert.Equal(t, 500.0, a.EstimatedLoss)
	assert.True(t, a.ShouldAlert)
}

func TestAssess_BothBreached_VibrationWins(t *testing.T) {
	a := Assess(&domain.SensorReading{TemperatureC: 10.0, VibrationG: 5.0})

	// The shock rule runs second, so its status overrides WARNING.
	assert.Equal(t, domain.StatusCritical, a.Status)
	require.Len(t, a.Issues, 2)
	assert.Equal(t, "Temperature: 10.0°C", a.Issues[0])
	assert.Equal(t, "Shock: 5.0G", a.Issues[1])
	assert.Equal(t, 800.0, a.EstimatedLoss)
	assert.True(t, a.ShouldAlert)
}

func TestAssess_LossRounding(t *testing.T) {
	tests := []struct {
		name    string
		reading domain.SensorReading
		want    float64
	}{
		{"fractional temperature", domain.SensorReading{TemperatureC: 8.111}, 16.65},
		{"fractional vibration", domain.SensorReading{VibrationG: 4.333}, 433.3},
		{"combined", domain.SensorReading{TemperatureC: 9.5, VibrationG: 4.25}, 650.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Assess(&tt.reading)
			assert.InDelta(t, tt.want, a.EstimatedLoss, 1e-9)
		})
	}
}
