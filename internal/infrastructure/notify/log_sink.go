// Package notify implementa el puerto Notifier: log estructurado y publicación en Kafka.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-entregas/internal/application/ports"
	"github.com/jhoicas/Inventario-entregas/pkg/logger"
)

var _ ports.Notifier = (*LogSink)(nil)

// LogSink escribe cada notificación como una línea de log.
type LogSink struct {
	log *logger.Logger
}

// NewLogSink construye el sink sobre el logger de la app.
func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log.Component("notify")}
}

// Notify registra la notificación con el nivel que corresponde a su severidad.
func (s *LogSink) Notify(_ context.Context, n ports.Notification) {
	s.log.WithLevel(levelFor(n.Severity)).
		Str("severity", string(n.Severity)).
		Msg(n.Message)
}

func levelFor(sev ports.Severity) zerolog.Level {
	switch sev {
	case ports.SeverityError:
		return zerolog.ErrorLevel
	case ports.SeverityWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// Fanout reparte cada notificación entre varios sinks, en orden.
type Fanout []ports.Notifier

func (f Fanout) Notify(ctx context.Context, n ports.Notification) {
	for _, s := range f {
		if s != nil {
			s.Notify(ctx, n)
		}
	}
}
