package mylog

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newStandardLogger
	}
}

type standardLogger struct {
	componentName string
	logger        *logrus.Logger
}

func newStandardLogger(componentName string) Logger {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Level = logrus.DebugLevel
	logger.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	}

	return standardLogger{
		componentName: componentName,
		logger:        logger,
	}
}

func (l standardLogger) Log(c context.Context, traceLabel string, severity Severity, format string, a ...any) {
	l.logger.WithFields(logrus.Fields{
		"component": l.componentName,
		"label":     traceLabel,
	}).Log(toLogrusLevel(severity), fmt.Sprintf(format, a...))
}

func toLogrusLevel(severity Severity) logrus.Level {
	switch severity {
	case SeverityDebug:
		return logrus.DebugLevel
	case SeverityWarn:
		return logrus.WarnLevel
	case SeverityError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
