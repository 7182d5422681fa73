package config

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// InitLogger configures the process-wide logrus logger from the environment.
// LOG_LEVEL selects the level (default info); release mode switches to JSON
// output so log collectors can parse fields.
func InitLogger() {
	logrus.SetOutput(os.Stdout)

	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}

	if os.Getenv("GIN_MODE") == "release" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// WithRequestID returns a context carrying the request id so that every log
// line emitted while serving the request can be correlated.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithContext returns a request-scoped logger. Outside a request it falls
// back to the standard logger.
func WithContext(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
			return logrus.WithField("request_id", id)
		}
	}
	return logrus.StandardLogger()
}
