// Package search implementa el filtro de texto compartido por el inventario y las entregas:
// coincidencia por subcadena sin distinguir mayúsculas sobre una lista de campos.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Field extrae de un elemento el texto sobre el que se busca.
type Field[T any] func(T) string

// Filter devuelve, preservando el orden, los elementos en los que algún campo contiene query.
// Una consulta vacía (o solo espacios) devuelve todos los elementos.
func Filter[T any](items []T, query string, fields ...Field[T]) []T {
	q := strings.TrimSpace(query)
	if q == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	// cases.Caser tiene estado: uno por llamada.
	fold := cases.Fold()
	needle := fold.String(q)

	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields {
			if strings.Contains(fold.String(f(it)), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
