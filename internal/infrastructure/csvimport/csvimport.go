// Package csvimport lee exportaciones CSV (inventario, clientes, ventas) para poblar el store.
// Las planillas heredadas suelen venir en ISO-8859-1; Reader las convierte a UTF-8.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	appinventory "github.com/jhoicas/Inventario-entregas/internal/application/inventory"
	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
)

// Encodings soportados.
const (
	EncodingUTF8   = "utf8"
	EncodingLatin1 = "latin1"
)

// Reader envuelve r para que entregue UTF-8.
func Reader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf-8":
		return r, nil
	case EncodingLatin1, "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	}
	return nil, fmt.Errorf("csvimport: encoding desconocido %q", encoding)
}

// RowError error de una fila concreta (1 = primera fila de datos).
type RowError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("fila %d, columna %s: %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// table es un CSV con cabecera; las columnas se buscan por nombre sin importar el orden.
type table struct {
	index map[string]int
	rows  [][]string
}

func readTable(r io.Reader, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csvimport: archivo vacío")
		}
		return nil, fmt.Errorf("csvimport: cabecera: %w", err)
	}
	t := &table{index: make(map[string]int, len(header))}
	for i, h := range header {
		// BOM de Excel en la primera columna
		h = strings.TrimPrefix(h, "\ufeff")
		t.index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := t.index[col]; !ok {
			return nil, fmt.Errorf("csvimport: falta la columna %q", col)
		}
	}
	t.rows, err = cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvimport: %w", err)
	}
	return t, nil
}

func (t *table) get(row []string, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t *table) getInt(row []string, n int, col string) (int, error) {
	raw := t.get(row, col)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &RowError{Row: n, Column: col, Err: err}
	}
	return v, nil
}

// ReadInventory columnas: name, category, stock, min_stock, price, supplier.
// La validación de dominio (categoría, negativos) queda para el libro de stock.
func ReadInventory(r io.Reader) ([]appinventory.ItemFields, error) {
	t, err := readTable(r, "name", "category", "stock", "min_stock", "price")
	if err != nil {
		return nil, err
	}
	out := make([]appinventory.ItemFields, 0, len(t.rows))
	for i, row := range t.rows {
		n := i + 1
		stock, err := t.getInt(row, n, "stock")
		if err != nil {
			return nil, err
		}
		minStock, err := t.getInt(row, n, "min_stock")
		if err != nil {
			return nil, err
		}
		price, err := decimal.NewFromString(t.get(row, "price"))
		if err != nil {
			return nil, &RowError{Row: n, Column: "price", Err: err}
		}
		out = append(out, appinventory.ItemFields{
			Name:     t.get(row, "name"),
			Category: entity.Category(strings.ToLower(t.get(row, "category"))),
			Stock:    stock,
			MinStock: minStock,
			Price:    price,
			Supplier: t.get(row, "supplier"),
		})
	}
	return out, nil
}

// ReadCustomers columnas: id, name, email, phone, status.
func ReadCustomers(r io.Reader) ([]entity.Customer, error) {
	t, err := readTable(r, "id", "name")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Customer, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, entity.Customer{
			ID:     t.get(row, "id"),
			Name:   t.get(row, "name"),
			Email:  t.get(row, "email"),
			Phone:  t.get(row, "phone"),
			Status: t.get(row, "status"),
		})
	}
	return out, nil
}

// ReadSales columnas: id, customer, product.
func ReadSales(r io.Reader) ([]entity.Sale, error) {
	t, err := readTable(r, "id", "customer", "product")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Sale, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, entity.Sale{
			ID:       t.get(row, "id"),
			Customer: t.get(row, "customer"),
			Product:  t.get(row, "product"),
		})
	}
	return out, nil
}
