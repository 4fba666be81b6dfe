package inventory

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-entregas/internal/application/ports"
	"github.com/jhoicas/Inventario-entregas/internal/domain"
	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/domain/inventory"
	"github.com/jhoicas/Inventario-entregas/internal/domain/repository"
	"github.com/jhoicas/Inventario-entregas/pkg/search"
)

// Direction sentido de un ajuste de stock.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// ItemFields datos editables de un artículo (alta y actualización).
type ItemFields struct {
	Name     string
	Category entity.Category
	Stock    int
	MinStock int
	Price    decimal.Decimal
	Supplier string
}

// StockDelta entrada de un ajuste masivo: Delta > 0 suma, Delta < 0 resta.
type StockDelta struct {
	ID    string `json:"id"`
	Delta int    `json:"delta"`
}

// BulkAdjustResult resultado individual de una entrada del ajuste masivo.
type BulkAdjustResult struct {
	ID   string
	Item *entity.InventoryItem // nil si Err != nil
	Err  error
}

// CategorySummary proyección de lectura por categoría.
type CategorySummary struct {
	Category   entity.CategoryDescriptor
	ItemCount  int
	TotalStock int
	TotalValue decimal.Decimal
	HasAlert   bool // algún artículo en nivel low u out
}

// Stats conteos por nivel de salud y valor total del inventario.
type Stats struct {
	Total      int
	Out        int
	Low        int
	OK         int
	TotalValue decimal.Decimal
}

// Option configura el Ledger.
type Option func(*Ledger)

// WithClock reemplaza el reloj usado para CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator reemplaza el generador de IDs de artículos.
func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// Ledger libro de stock: dueño exclusivo del catálogo en memoria.
// Cada mutación exitosa reemplaza la colección completa en el store.
// Los llamadores solo reciben copias.
type Ledger struct {
	mu       sync.Mutex
	items    []entity.InventoryItem
	store    repository.CollectionStore
	notifier ports.Notifier
	now      func() time.Time
	newID    func() string
}

// NewLedger construye el libro desde un snapshot explícito del catálogo.
func NewLedger(items []entity.InventoryItem, store repository.CollectionStore, notifier ports.Notifier, opts ...Option) *Ledger {
	l := &Ledger{
		items:    append([]entity.InventoryItem(nil), items...),
		store:    store,
		notifier: notifier,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadLedger lee el catálogo del store una sola vez y construye el libro.
func LoadLedger(ctx context.Context, store repository.CollectionStore, notifier ports.Notifier, opts ...Option) (*Ledger, error) {
	var items []entity.InventoryItem
	if _, err := store.Load(ctx, repository.KeyInventory, &items); err != nil {
		return nil, fmt.Errorf("cargar inventario: %w", err)
	}
	return NewLedger(items, store, notifier, opts...), nil
}

// CreateItem valida y agrega un artículo nuevo con ID y fechas frescas.
func (l *Ledger) CreateItem(ctx context.Context, in ItemFields) (entity.InventoryItem, error) {
	if err := validateFields(in); err != nil {
		return entity.InventoryItem{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	item := entity.InventoryItem{
		ID:        l.newID(),
		Name:      strings.TrimSpace(in.Name),
		Category:  in.Category,
		Stock:     in.Stock,
		MinStock:  in.MinStock,
		Price:     in.Price,
		Supplier:  strings.TrimSpace(in.Supplier),
		CreatedAt: now,
		UpdatedAt: now,
	}
	l.items = append(l.items, item)
	if err := l.persist(ctx); err != nil {
		return entity.InventoryItem{}, err
	}
	l.notify(ctx, ports.SeveritySuccess, fmt.Sprintf("Artículo %q creado", item.Name))
	l.notifyHealth(ctx, item)
	return item, nil
}

// UpdateItem reemplaza los datos del artículo conservando ID y CreatedAt.
func (l *Ledger) UpdateItem(ctx context.Context, id string, in ItemFields) (entity.InventoryItem, error) {
	if err := validateFields(in); err != nil {
		return entity.InventoryItem{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return entity.InventoryItem{}, notFound(id)
	}
	prev := l.items[idx]
	item := entity.InventoryItem{
		ID:        prev.ID,
		Name:      strings.TrimSpace(in.Name),
		Category:  in.Category,
		Stock:     in.Stock,
		MinStock:  in.MinStock,
		Price:     in.Price,
		Supplier:  strings.TrimSpace(in.Supplier),
		CreatedAt: prev.CreatedAt,
		UpdatedAt: l.now(),
	}
	l.items[idx] = item
	if err := l.persist(ctx); err != nil {
		return entity.InventoryItem{}, err
	}
	l.notify(ctx, ports.SeveritySuccess, fmt.Sprintf("Artículo %q actualizado", item.Name))
	l.notifyHealth(ctx, item)
	return item, nil
}

// DeleteItem elimina el artículo. Una segunda llamada con el mismo id falla con ErrNotFound.
func (l *Ledger) DeleteItem(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return notFound(id)
	}
	name := l.items[idx].Name
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	if err := l.persist(ctx); err != nil {
		return err
	}
	l.notify(ctx, ports.SeverityInfo, fmt.Sprintf("Artículo %q eliminado", name))
	return nil
}

// AdjustStock suma o resta quantity unidades. Una salida mayor al stock se rechaza
// con InsufficientStockError y el stock queda intacto (no se recorta a cero).
func (l *Ledger) AdjustStock(ctx context.Context, id string, dir Direction, quantity int) (entity.InventoryItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.adjustLocked(ctx, id, dir, quantity)
}

// BulkAdjustStock aplica cada entrada como un AdjustStock independiente.
// El fallo de una entrada no impide las demás; el resultado conserva el orden de entrada.
func (l *Ledger) BulkAdjustStock(ctx context.Context, entries []StockDelta) []BulkAdjustResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	results := make([]BulkAdjustResult, 0, len(entries))
	for _, e := range entries {
		dir, qty := DirectionIncrease, e.Delta
		if e.Delta < 0 {
			dir, qty = DirectionDecrease, -e.Delta
		}
		item, err := l.adjustLocked(ctx, e.ID, dir, qty)
		res := BulkAdjustResult{ID: e.ID, Err: err}
		if err == nil {
			res.Item = &item
		}
		results = append(results, res)
	}
	return results
}

func (l *Ledger) adjustLocked(ctx context.Context, id string, dir Direction, quantity int) (entity.InventoryItem, error) {
	var bad []string
	if dir != DirectionIncrease && dir != DirectionDecrease {
		bad = append(bad, "direction")
	}
	if quantity <= 0 {
		bad = append(bad, "quantity")
	}
	if len(bad) > 0 {
		return entity.InventoryItem{}, domain.NewValidationError(bad...)
	}

	idx := l.indexOf(id)
	if idx < 0 {
		return entity.InventoryItem{}, notFound(id)
	}
	item := l.items[idx]
	if dir == DirectionDecrease {
		if quantity > item.Stock {
			return entity.InventoryItem{}, &domain.InsufficientStockError{ItemID: id, Available: item.Stock, Requested: quantity}
		}
		item.Stock -= quantity
	} else {
		if quantity > math.MaxInt-item.Stock {
			return entity.InventoryItem{}, domain.NewValidationError("quantity")
		}
		item.Stock += quantity
	}
	item.UpdatedAt = l.now()
	l.items[idx] = item

	if err := l.persist(ctx); err != nil {
		return entity.InventoryItem{}, err
	}

	l.notify(ctx, ports.SeveritySuccess, fmt.Sprintf("Stock de %q actualizado: %d unidades", item.Name, item.Stock))
	l.notifyHealth(ctx, item)
	return item, nil
}

// Classify devuelve el nivel de salud del stock del artículo.
func (l *Ledger) Classify(item entity.InventoryItem) inventory.StockTier {
	return inventory.Classify(item.Stock, item.MinStock)
}

// Get devuelve una copia del artículo.
func (l *Ledger) Get(id string) (entity.InventoryItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := l.indexOf(id)
	if idx < 0 {
		return entity.InventoryItem{}, notFound(id)
	}
	return l.items[idx], nil
}

// List devuelve una copia del catálogo en su orden actual.
func (l *Ledger) List() []entity.InventoryItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]entity.InventoryItem(nil), l.items...)
}

// AggregateByCategory calcula, para cada categoría conocida (incluidas las vacías),
// el total de unidades, el valor Σ stock × precio y si hay artículos en alerta.
func (l *Ledger) AggregateByCategory() []CategorySummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	descs := entity.Categories()
	out := make([]CategorySummary, len(descs))
	pos := make(map[entity.Category]int, len(descs))
	for i, d := range descs {
		out[i] = CategorySummary{Category: d, TotalValue: decimal.Zero}
		pos[d.Key] = i
	}
	for _, it := range l.items {
		i, ok := pos[it.Category]
		if !ok {
			continue
		}
		s := &out[i]
		s.ItemCount++
		s.TotalStock += it.Stock
		s.TotalValue = s.TotalValue.Add(it.Value())
		if inventory.Classify(it.Stock, it.MinStock).NeedsAttention() {
			s.HasAlert = true
		}
	}
	return out
}

// Stats cuenta artículos por nivel y suma el valor del inventario.
func (l *Ledger) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	st := Stats{Total: len(l.items), TotalValue: decimal.Zero}
	for _, it := range l.items {
		switch inventory.Classify(it.Stock, it.MinStock) {
		case inventory.TierOut:
			st.Out++
		case inventory.TierLow:
			st.Low++
		default:
			st.OK++
		}
		st.TotalValue = st.TotalValue.Add(it.Value())
	}
	return st
}

// Search filtra el catálogo por subcadena (sin distinguir mayúsculas) en los campos indicados.
// Sin campos se busca en nombre, categoría y proveedor.
func (l *Ledger) Search(query string, fields ...ItemField) []entity.InventoryItem {
	if len(fields) == 0 {
		fields = AllItemFields()
	}
	extractors := make([]search.Field[entity.InventoryItem], 0, len(fields))
	for _, f := range fields {
		if ex := f.extractor(); ex != nil {
			extractors = append(extractors, ex)
		}
	}
	return search.Filter(l.List(), query, extractors...)
}

// ItemFilter filtros exactos del listado; un campo vacío no filtra.
type ItemFilter struct {
	Category entity.Category
	Tier     inventory.StockTier
}

// Browse combina la búsqueda por texto con los filtros de categoría y nivel de stock.
func (l *Ledger) Browse(query string, filter ItemFilter, fields ...ItemField) []entity.InventoryItem {
	items := l.Search(query, fields...)
	if filter == (ItemFilter{}) {
		return items
	}
	out := items[:0]
	for _, it := range items {
		if filter.Category != "" && it.Category != filter.Category {
			continue
		}
		if filter.Tier != "" && inventory.Classify(it.Stock, it.MinStock) != filter.Tier {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (l *Ledger) indexOf(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

// persist reemplaza la colección completa. Si falla, el estado en memoria no se revierte.
func (l *Ledger) persist(ctx context.Context) error {
	if err := l.store.Save(ctx, repository.KeyInventory, l.items); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (l *Ledger) notify(ctx context.Context, sev ports.Severity, msg string) {
	if l.notifier == nil {
		return
	}
	l.notifier.Notify(ctx, ports.Notification{Message: msg, Severity: sev})
}

// notifyHealth avisa si el artículo quedó en nivel low u out.
func (l *Ledger) notifyHealth(ctx context.Context, item entity.InventoryItem) {
	switch inventory.Classify(item.Stock, item.MinStock) {
	case inventory.TierOut:
		l.notify(ctx, ports.SeverityError, fmt.Sprintf("%q se quedó sin stock", item.Name))
	case inventory.TierLow:
		l.notify(ctx, ports.SeverityWarning, fmt.Sprintf("Stock bajo en %q: %d unidades (mínimo %d)", item.Name, item.Stock, item.MinStock))
	}
}

func validateFields(in ItemFields) error {
	var bad []string
	if strings.TrimSpace(in.Name) == "" {
		bad = append(bad, "name")
	}
	if !in.Category.Valid() {
		bad = append(bad, "category")
	}
	if in.Price.IsNegative() {
		bad = append(bad, "price")
	}
	if in.Stock < 0 {
		bad = append(bad, "stock")
	}
	if in.MinStock < 0 {
		bad = append(bad, "min_stock")
	}
	if len(bad) > 0 {
		return domain.NewValidationError(bad...)
	}
	return nil
}

func notFound(id string) error {
	return fmt.Errorf("%w: artículo %s", domain.ErrNotFound, id)
}
