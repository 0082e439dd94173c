package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"pharmaguard/functions/internal/metrics"
)

// Func is one function invocation: raw request bytes in, raw response
// bytes out. The response is always valid JSON; failures of any kind are
// reported in-band as {"error": "..."} so the invoking runtime never sees
// an unparseable body.
type Func func(ctx context.Context, req []byte) []byte

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(err error) []byte {
	metrics.InvocationErrors.Add(1)
	out, marshalErr := json.Marshal(errorResponse{Error: err.Error()})
	if marshalErr != nil {
		// err.Error() contained something json.Marshal choked on; the
		// fallback shape is hand-built and always valid.
		return []byte(`{"error":"internal error"}`)
	}
	return out
}

// Instrument wraps a function with invocation counting and a panic
// boundary producing the same error shape as ordinary failures.
func Instrument(fn Func) Func {
	return func(ctx context.Context, req []byte) (resp []byte) {
		metrics.InvocationsTotal.Add(1)
		defer func() {
			if r := recover(); r != nil {
				resp = errorJSON(fmt.Errorf("panic: %v", r))
			}
		}()
		return fn(ctx, req)
	}
}
