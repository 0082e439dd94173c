package stdio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"pharmaguard/functions/internal/handler"
)

// Runner drives one classic-watchdog invocation: the whole request arrives
// on the input reader, the single JSON response goes to the output writer.
type Runner struct {
	fn  handler.Func
	in  io.Reader
	out io.Writer
}

func NewRunner(fn handler.Func, in io.Reader, out io.Writer) *Runner {
	return &Runner{fn: fn, in: in, out: out}
}

func (r *Runner) Run(ctx context.Context) error {
	req, err := io.ReadAll(r.in)
	if err != nil {
		// Even a failed read answers with valid JSON on the output channel.
		msg, _ := json.Marshal(map[string]string{"error": err.Error()})
		_, werr := fmt.Fprintf(r.out, "%s\n", msg)
		return werr
	}

	resp := r.fn(ctx, req)
	_, err = fmt.Fprintf(r.out, "%s\n", resp)
	return err
}
