package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/Inventario-entregas/internal/application/ports"
	"github.com/jhoicas/Inventario-entregas/pkg/config"
	"github.com/jhoicas/Inventario-entregas/pkg/logger"
)

var _ ports.Notifier = (*KafkaSink)(nil)

// MessageWriter lo cumple *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// event es el payload publicado en el topic.
type event struct {
	Message    string         `json:"message"`
	Severity   ports.Severity `json:"severity"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// KafkaSink publica las notificaciones en un topic. La clave del mensaje es la severidad.
// Un error de publicación se registra en log y no llega al núcleo.
type KafkaSink struct {
	writer MessageWriter
	log    *logger.Logger
	now    func() time.Time
}

// NewKafkaWriter construye un writer asíncrono: Notify no espera al broker.
// En modo asíncrono WriteMessages no devuelve errores de entrega; los lotes
// fallidos se registran desde Completion.
func NewKafkaWriter(cfg config.KafkaConfig, log *logger.Logger) *kafka.Writer {
	if log == nil {
		log = logger.Nop()
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
		Completion:   logFailedBatch(log.Component("notify.kafka")),
	}
}

func logFailedBatch(log *logger.Logger) func([]kafka.Message, error) {
	return func(messages []kafka.Message, err error) {
		if err == nil {
			return
		}
		severities := make([]string, 0, len(messages))
		for _, m := range messages {
			severities = append(severities, string(m.Key))
		}
		log.Warn().Err(err).
			Int("messages", len(messages)).
			Strs("severities", severities).
			Msg("no se pudo entregar el lote de notificaciones")
	}
}

// NewKafkaSink construye el sink sobre cualquier MessageWriter.
func NewKafkaSink(w MessageWriter, log *logger.Logger) *KafkaSink {
	if log == nil {
		log = logger.Nop()
	}
	return &KafkaSink{writer: w, log: log.Component("notify.kafka"), now: time.Now}
}

// Notify serializa y publica la notificación.
func (s *KafkaSink) Notify(ctx context.Context, n ports.Notification) {
	payload, err := json.Marshal(event{Message: n.Message, Severity: n.Severity, OccurredAt: s.now().UTC()})
	if err != nil {
		s.log.Error().Err(err).Msg("serializar notificación")
		return
	}
	msg := kafka.Message{Key: []byte(n.Severity), Value: payload}
	// Con un writer síncrono el error llega aquí; con uno asíncrono lo registra Completion.
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		s.log.Warn().Err(err).
			Str("severity", string(n.Severity)).
			Msg("no se pudo publicar la notificación")
	}
}

// Close vacía y cierra el writer.
func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
