package delivery

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-entregas/internal/application/ports"
	"github.com/jhoicas/Inventario-entregas/internal/domain"
	"github.com/jhoicas/Inventario-entregas/internal/domain/delivery"
	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/domain/repository"
	"github.com/jhoicas/Inventario-entregas/pkg/logger"
	"github.com/jhoicas/Inventario-entregas/pkg/search"
)

// DeliveredHook efecto posterior a que una entrega pasa a delivered.
// Un error del hook no revierte la transición.
type DeliveredHook interface {
	OnDelivered(ctx context.Context, d entity.Delivery) error
}

// DeliveredHookFunc adapta una función a DeliveredHook.
type DeliveredHookFunc func(ctx context.Context, d entity.Delivery) error

func (f DeliveredHookFunc) OnDelivered(ctx context.Context, d entity.Delivery) error { return f(ctx, d) }

// Option configura el Tracker.
type Option func(*Tracker)

// WithClock reemplaza el reloj usado para CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithIDGenerator reemplaza el generador de IDs de entregas.
func WithIDGenerator(newID func() string) Option {
	return func(t *Tracker) { t.newID = newID }
}

// WithDeliveredHook registra un hook que corre tras cada transición a delivered.
func WithDeliveredHook(h DeliveredHook) Option {
	return func(t *Tracker) { t.hooks = append(t.hooks, h) }
}

// Tracker rastreador de entregas: dueño exclusivo de la colección en memoria.
type Tracker struct {
	mu         sync.Mutex
	deliveries []entity.Delivery
	store      repository.CollectionStore
	notifier   ports.Notifier
	log        *logger.Logger
	hooks      []DeliveredHook
	now        func() time.Time
	newID      func() string
}

// NewTracker construye el rastreador desde un snapshot explícito.
func NewTracker(deliveries []entity.Delivery, store repository.CollectionStore, notifier ports.Notifier, log *logger.Logger, opts ...Option) *Tracker {
	if log == nil {
		log = logger.Nop()
	}
	t := &Tracker{
		deliveries: append([]entity.Delivery(nil), deliveries...),
		store:      store,
		notifier:   notifier,
		log:        log,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// LoadTracker lee las entregas del store una sola vez y construye el rastreador.
func LoadTracker(ctx context.Context, store repository.CollectionStore, notifier ports.Notifier, log *logger.Logger, opts ...Option) (*Tracker, error) {
	var deliveries []entity.Delivery
	if _, err := store.Load(ctx, repository.KeyDeliveries, &deliveries); err != nil {
		return nil, fmt.Errorf("cargar entregas: %w", err)
	}
	return NewTracker(deliveries, store, notifier, log, opts...), nil
}

// SyncFromSales crea una entrega pending por cada venta aún no representada (por SaleID).
// Es idempotente: repetir la misma lista crea cero registros. Sin ventas nuevas devuelve (0, nil).
func (t *Tracker) SyncFromSales(ctx context.Context, sales []entity.Sale) (int, error) {
	if len(sales) == 0 {
		t.notify(ctx, ports.SeverityError, "No hay ventas para sincronizar")
		return 0, nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	known := make(map[string]struct{}, len(t.deliveries))
	for _, d := range t.deliveries {
		known[d.SaleID] = struct{}{}
	}

	now := t.now()
	created := 0
	for _, s := range sales {
		saleID := strings.TrimSpace(s.ID)
		if saleID == "" {
			t.log.Warn().Str("customer", s.Customer).Msg("venta sin id, se omite")
			continue
		}
		if _, ok := known[saleID]; ok {
			continue
		}
		known[saleID] = struct{}{}
		t.deliveries = append(t.deliveries, entity.Delivery{
			ID:        t.newID(),
			SaleID:    saleID,
			Customer:  s.Customer,
			Order:     s.Product,
			Status:    entity.DeliveryStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
		created++
	}

	if created == 0 {
		t.notify(ctx, ports.SeverityInfo, "Todas las ventas ya están sincronizadas")
		return 0, nil
	}
	if err := t.persist(ctx); err != nil {
		return 0, err
	}
	t.notify(ctx, ports.SeveritySuccess, fmt.Sprintf("%d entregas nuevas sincronizadas", created))
	return created, nil
}

// SyncFromFeed trae la lista completa de ventas del feed y la sincroniza.
func (t *Tracker) SyncFromFeed(ctx context.Context, feed ports.SalesFeed) (int, error) {
	sales, err := feed.Sales(ctx)
	if err != nil {
		return 0, fmt.Errorf("leer feed de ventas: %w", err)
	}
	return t.SyncFromSales(ctx, sales)
}

// Advance mueve la entrega al estado target si sigue inmediatamente al actual.
// Entrar en shipped exige transportadora (la recibida o la ya registrada).
// Al llegar a delivered se ejecutan los hooks; sus errores no revierten la transición.
func (t *Tracker) Advance(ctx context.Context, id string, target entity.DeliveryStatus, courier string) (entity.Delivery, error) {
	if _, ok := delivery.ParseStatus(string(target)); !ok {
		return entity.Delivery{}, domain.NewValidationError("status")
	}
	d, err := t.advance(ctx, id, target, strings.TrimSpace(courier))
	if err != nil {
		return entity.Delivery{}, err
	}
	t.notify(ctx, ports.SeveritySuccess, fmt.Sprintf("Entrega de %q marcada como %s", d.Customer, d.Status))
	if d.Status == entity.DeliveryStatusDelivered {
		t.runHooks(ctx, d)
	}
	return d, nil
}

func (t *Tracker) advance(ctx context.Context, id string, target entity.DeliveryStatus, courier string) (entity.Delivery, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx < 0 {
		return entity.Delivery{}, notFound(id)
	}
	d := t.deliveries[idx]
	if !delivery.CanAdvance(d.Status, target) {
		return entity.Delivery{}, &domain.InvalidTransitionError{From: string(d.Status), To: string(target)}
	}
	if delivery.RequiresCourier(target) && courier == "" && strings.TrimSpace(d.Courier) == "" {
		return entity.Delivery{}, domain.ErrMissingCourier
	}

	d.Status = target
	if courier != "" {
		d.Courier = courier
	}
	d.UpdatedAt = t.now()
	t.deliveries[idx] = d

	if err := t.persist(ctx); err != nil {
		return entity.Delivery{}, err
	}
	return d, nil
}

func (t *Tracker) runHooks(ctx context.Context, d entity.Delivery) {
	for _, h := range t.hooks {
		if err := h.OnDelivered(ctx, d); err != nil {
			t.log.Warn().Err(err).
				Str("delivery_id", d.ID).
				Str("customer", d.Customer).
				Msg("hook de entrega completada falló")
			t.notify(ctx, ports.SeverityWarning, fmt.Sprintf("No se pudo actualizar el cliente %q", d.Customer))
		}
	}
}

// Get devuelve una copia de la entrega.
func (t *Tracker) Get(id string) (entity.Delivery, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := t.indexOf(id)
	if idx < 0 {
		return entity.Delivery{}, notFound(id)
	}
	return t.deliveries[idx], nil
}

// List devuelve las entregas en su orden; status vacío = todas.
func (t *Tracker) List(status entity.DeliveryStatus) []entity.Delivery {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]entity.Delivery, 0, len(t.deliveries))
	for _, d := range t.deliveries {
		if status == "" || d.Status == status {
			out = append(out, d)
		}
	}
	return out
}

// Counts cuenta entregas por estado.
func (t *Tracker) Counts() map[entity.DeliveryStatus]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := map[entity.DeliveryStatus]int{
		entity.DeliveryStatusPending:   0,
		entity.DeliveryStatusShipped:   0,
		entity.DeliveryStatusDelivered: 0,
	}
	for _, d := range t.deliveries {
		out[d.Status]++
	}
	return out
}

// Search filtra por cliente y pedido con la misma semántica que la búsqueda del inventario.
func (t *Tracker) Search(query string) []entity.Delivery {
	return search.Filter(t.List(""), query,
		func(d entity.Delivery) string { return d.Customer },
		func(d entity.Delivery) string { return d.Order },
	)
}

func (t *Tracker) indexOf(id string) int {
	for i := range t.deliveries {
		if t.deliveries[i].ID == id {
			return i
		}
	}
	return -1
}

// persist reemplaza la colección completa. Si falla, el estado en memoria no se revierte.
func (t *Tracker) persist(ctx context.Context) error {
	if err := t.store.Save(ctx, repository.KeyDeliveries, t.deliveries); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (t *Tracker) notify(ctx context.Context, sev ports.Severity, msg string) {
	if t.notifier == nil {
		return
	}
	t.notifier.Notify(ctx, ports.Notification{Message: msg, Severity: sev})
}

func notFound(id string) error {
	return fmt.Errorf("%w: entrega %s", domain.ErrNotFound, id)
}
