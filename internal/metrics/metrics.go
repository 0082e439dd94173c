package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

var (
	InvocationsTotal  atomic.Int64
	InvocationErrors  atomic.Int64
	EmailsSent        atomic.Int64
	EmailFailures     atomic.Int64
	AssessmentsUnsafe atomic.Int64
)

func HandleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "function_invocations_total %d\n", InvocationsTotal.Load())
	fmt.Fprintf(w, "function_invocation_errors_total %d\n", InvocationErrors.Load())
	fmt.Fprintf(w, "function_emails_sent_total %d\n", EmailsSent.Load())
	fmt.Fprintf(w, "function_email_failures_total %d\n", EmailFailures.Load())
	fmt.Fprintf(w, "function_assessments_unsafe_total %d\n", AssessmentsUnsafe.Load())
}
