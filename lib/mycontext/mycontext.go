package mycontext

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// CtxTraceContext is a context key for the trace context this (used by mylog)
type CtxTraceContext struct{}

func ContextFromHTTPRequest(r *http.Request) context.Context {
	var trace string

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	traceContext := r.Header.Get("X-Cloud-Trace-Context")
	traceParts := strings.Split(traceContext, "/")

	if len(traceParts) > 0 && len(traceParts[0]) > 0 {
		trace = fmt.Sprintf("projects/%s/traces/%s", projectID, traceParts[0])
	}

	// Keep the request context so cancellation and otel spans flow through.
	return context.WithValue(r.Context(), CtxTraceContext{}, trace)
}

// TraceFromContext returns the empty string outside of a request.
func TraceFromContext(c context.Context) string {
	if c == nil {
		return ""
	}
	trace, ok := c.Value(CtxTraceContext{}).(string)
	if !ok {
		return ""
	}
	return trace
}
