package mylog

import "context"

type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// New returns a logger for the named component. The backend is chosen at init
// time: structured json on Google Cloud, human readable text elsewhere.
var New func(componentName string) Logger

type Logger interface {
	Log(c context.Context, traceLabel string, severity Severity, format string, a ...any)
}

type nopLogger struct{}

// Discard drops everything, handy in tests that do not care about output.
func Discard() Logger {
	return nopLogger{}
}

func (nopLogger) Log(c context.Context, traceLabel string, severity Severity, format string, a ...any) {
}
