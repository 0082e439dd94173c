package http

import "net/http"

// JSONMiddleware marks every function response as JSON. The handler
// contract guarantees the body is valid JSON on every path, so the header
// is unconditional.
type JSONMiddleware struct{}

func NewJSONMiddleware() *JSONMiddleware {
	return &JSONMiddleware{}
}

func (m *JSONMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
