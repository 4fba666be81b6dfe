package notify_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-entregas/internal/application/ports"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/notify"
	"github.com/jhoicas/Inventario-entregas/pkg/config"
	"github.com/jhoicas/Inventario-entregas/pkg/logger"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestLogSink_NivelPorSeveridad(t *testing.T) {
	var buf bytes.Buffer
	sink := notify.NewLogSink(logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf}))

	sink.Notify(context.Background(), ports.Notification{Message: "Stock agotado: Panel X", Severity: ports.SeverityError})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "error", line["severity"])
	assert.Equal(t, "notify", line["component"])
	assert.Equal(t, "Stock agotado: Panel X", line["message"])
}

func TestLogSink_WarningYSuccess(t *testing.T) {
	var buf bytes.Buffer
	sink := notify.NewLogSink(logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf}))

	sink.Notify(context.Background(), ports.Notification{Message: "bajo", Severity: ports.SeverityWarning})
	assert.Contains(t, buf.String(), `"level":"warn"`)

	buf.Reset()
	sink.Notify(context.Background(), ports.Notification{Message: "ok", Severity: ports.SeveritySuccess})
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestKafkaSink_PublicaEvento(t *testing.T) {
	w := &fakeWriter{}
	sink := notify.NewKafkaSink(w, nil)

	sink.Notify(context.Background(), ports.Notification{Message: "Stock bajo: Panel X", Severity: ports.SeverityWarning})

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "warning", string(w.msgs[0].Key))
	var ev map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &ev))
	assert.Equal(t, "Stock bajo: Panel X", ev["message"])
	assert.Equal(t, "warning", ev["severity"])
	assert.NotEmpty(t, ev["occurred_at"])

	require.NoError(t, sink.Close())
	assert.True(t, w.closed)
}

func TestKafkaSink_ErrorNoSePropaga(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker caído")}
	sink := notify.NewKafkaSink(w, nil)

	assert.NotPanics(t, func() {
		sink.Notify(context.Background(), ports.Notification{Message: "x", Severity: ports.SeverityInfo})
	})
	assert.Empty(t, w.msgs)
}

func TestFanout(t *testing.T) {
	var got []string
	rec := ports.NotifierFunc(func(_ context.Context, n ports.Notification) { got = append(got, n.Message) })
	f := notify.Fanout{rec, nil, rec}

	f.Notify(context.Background(), ports.Notification{Message: "hola", Severity: ports.SeverityInfo})
	assert.Equal(t, []string{"hola", "hola"}, got)
}

func TestNewKafkaWriter(t *testing.T) {
	w := notify.NewKafkaWriter(config.KafkaConfig{Brokers: []string{"k1:9092", "k2:9092"}, Topic: "inventario.notificaciones"}, nil)
	assert.Equal(t, "inventario.notificaciones", w.Topic)
	assert.True(t, w.Async)
	assert.Equal(t, "tcp", w.Addr.Network())
	require.NotNil(t, w.Completion)
}

func TestNewKafkaWriter_CompletionRegistraLotesFallidos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})
	w := notify.NewKafkaWriter(config.KafkaConfig{Brokers: []string{"k1:9092"}, Topic: "t"}, log)

	w.Completion([]kafka.Message{{Key: []byte("warning")}, {Key: []byte("error")}}, nil)
	assert.Empty(t, buf.String(), "un lote entregado no se registra")

	w.Completion([]kafka.Message{{Key: []byte("warning")}, {Key: []byte("error")}}, errors.New("broker caído"))
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "notify.kafka", line["component"])
	assert.Equal(t, float64(2), line["messages"])
	assert.Equal(t, []any{"warning", "error"}, line["severities"])
	assert.Equal(t, "broker caído", line["error"])
}
