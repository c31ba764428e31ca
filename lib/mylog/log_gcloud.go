package mylog

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/MarcGrol/shopfrontend/lib/mycontext"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		New = newGcloudLogger
	}
}

type structuredLogger struct {
	componentName string
	logger        *logrus.Logger
}

func newGcloudLogger(componentName string) Logger {
	logger := logrus.New()
	logger.Out = os.Stdout
	logger.Level = logrus.DebugLevel
	// Field names as understood by Cloud Logging. A timestamp is added when
	// shipping logs, so we leave it out.
	logger.Formatter = &logrus.JSONFormatter{
		DisableTimestamp: true,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
	}

	return structuredLogger{
		componentName: componentName,
		logger:        logger,
	}
}

func (l structuredLogger) Log(c context.Context, traceLabel string, severity Severity, format string, a ...any) {
	fields := logrus.Fields{
		"component": l.componentName,
		"logging.googleapis.com/labels": map[string]string{
			"aggregate": traceLabel,
		},
	}
	if trace := mycontext.TraceFromContext(c); trace != "" {
		fields["logging.googleapis.com/trace"] = trace
	}

	l.logger.WithFields(fields).Log(toLogrusLevel(severity), l.componentName+":"+fmt.Sprintf(format, a...))
}
