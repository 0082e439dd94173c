package handler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskCalculator_Warning(t *testing.T) {
	fn := RiskCalculator()
	resp := fn(context.Background(), []byte(`{"temperature": 10.0, "vibration": 0}`))

	assert.JSONEq(t, `{
		"status": "WARNING",
		"issues": ["Temperature: 10.0°C"],
		"estimated_loss": 300.0,
		"should_alert": true,
		"audit_engine": "OpenFaaS"
	}`, string(resp))
}

func TestRiskCalculator_Critical(t *testing.T) {
	fn := RiskCalculator()
	resp := fn(context.Background(), []byte(`{"temperature": 10.0, "vibration": 5.0}`))

	var out struct {
		Status        string   `json:"status"`
		Issues        []string `json:"issues"`
		EstimatedLoss float64  `json:"estimated_loss"`
	}
	require.NoError(t, json.Unmarshal(resp, &out))

	assert.Equal(t, "CRITICAL", out.Status)
	assert.Len(t, out.Issues, 2)
	assert.Equal(t, 800.0, out.EstimatedLoss)
}

func TestRiskCalculator_EmptyRequestUsesDefaults(t *testing.T) {
	fn := RiskCalculator()
	resp := fn(context.Background(), []byte(`{}`))

	assert.JSONEq(t, `{
		"status": "SAFE",
		"issues": [],
		"estimated_loss": 0,
		"should_alert": false,
		"audit_engine": "OpenFaaS"
	}`, string(resp))
}

func TestRiskCalculator_ZeroIsNotAbsent(t *testing.T) {
	// An explicitly supplied value must not be replaced by the default,
	// even when it is below it.
	fn := RiskCalculator()
	resp := fn(context.Background(), []byte(`{"temperature": -20, "vibration": 6}`))

	var out struct {
		Status string   `json:"status"`
		Issues []string `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(resp, &out))
	assert.Equal(t, "CRITICAL", out.Status)
	assert.Equal(t, []string{"Shock: 6.0G"}, out.Issues)
}

func TestRiskCalculator_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		req  string
	}{
		{"not json", "not json at all"},
		{"wrong field type", `{"temperature": "hot"}`},
		{"empty input", ""},
	}

	fn := RiskCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := fn(context.Background(), []byte(tt.req))

			var out map[string]interface{}
			require.NoError(t, json.Unmarshal(resp, &out), "response must stay valid JSON")
			assert.Contains(t, out, "error")
			assert.NotEmpty(t, out["error"])
		})
	}
}

func TestInstrument_RecoversPanics(t *testing.T) {
	fn := Instrument(func(ctx context.Context, req []byte) []byte {
		panic("boom")
	})
	resp := fn(context.Background(), nil)

	var out map[string]string
	require.NoError(t, json.Unmarshal(resp, &out))
	assert.Contains(t, out["error"], "boom")
}
