package ports

import "context"

// Severity nivel de una notificación para el usuario.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification alerta dirigida al usuario.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Notifier define el puerto de salida para emitir alertas al usuario.
// Es fire-and-forget: el núcleo no consume ningún resultado.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapta una función al puerto Notifier.
type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }
