package inventory

import (
	"strings"

	"github.com/jhoicas/Inventario-entregas/internal/domain"
	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/pkg/search"
)

// ItemField campo de texto de un artículo sobre el que se puede buscar.
type ItemField string

const (
	FieldName     ItemField = "name"
	FieldCategory ItemField = "category"
	FieldSupplier ItemField = "supplier"
)

// AllItemFields devuelve los campos de búsqueda por defecto.
func AllItemFields() []ItemField {
	return []ItemField{FieldName, FieldCategory, FieldSupplier}
}

// ParseItemFields convierte una lista separada por comas ("name,supplier").
// Una lista vacía devuelve nil (buscar en todos los campos).
func ParseItemFields(csv string) ([]ItemField, error) {
	var out []ItemField
	for _, p := range strings.Split(csv, ",") {
		p = strings.TrimSpace(strings.ToLower(p))
		if p == "" {
			continue
		}
		f := ItemField(p)
		if f.extractor() == nil {
			return nil, domain.NewValidationError("fields")
		}
		out = append(out, f)
	}
	return out, nil
}

func (f ItemField) extractor() search.Field[entity.InventoryItem] {
	switch f {
	case FieldName:
		return func(i entity.InventoryItem) string { return i.Name }
	case FieldCategory:
		return func(i entity.InventoryItem) string { return string(i.Category) }
	case FieldSupplier:
		return func(i entity.InventoryItem) string { return i.Supplier }
	}
	return nil
}
