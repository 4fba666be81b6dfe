package csvimport_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/csvimport"
)

func TestReadInventory(t *testing.T) {
	in := "name,category,stock,min_stock,price,supplier\n" +
		"Panel X, Panels ,10,5,120.50,SolarCo\n" +
		"Inversor 3kW,inverters,1,2,900,\n"

	items, err := csvimport.ReadInventory(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Panel X", items[0].Name)
	assert.Equal(t, entity.CategoryPanels, items[0].Category)
	assert.Equal(t, 10, items[0].Stock)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("120.50")))
	assert.Empty(t, items[1].Supplier)
}

func TestReadInventory_ColumnasEnOtroOrdenYBOM(t *testing.T) {
	in := "\ufeffprice,min_stock,stock,category,name\n5,0,3,fans,Ventilador\n"
	items, err := csvimport.ReadInventory(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ventilador", items[0].Name)
	assert.Equal(t, 3, items[0].Stock)
}

func TestReadInventory_Errores(t *testing.T) {
	_, err := csvimport.ReadInventory(strings.NewReader(""))
	assert.Error(t, err)

	_, err = csvimport.ReadInventory(strings.NewReader("name,category\nA,fans\n"))
	assert.ErrorContains(t, err, "stock")

	_, err = csvimport.ReadInventory(strings.NewReader("name,category,stock,min_stock,price\nA,fans,2.5,0,1\n"))
	var rowErr *csvimport.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 1, rowErr.Row)
	assert.Equal(t, "stock", rowErr.Column)
}

func TestReadSalesYCustomers(t *testing.T) {
	sales, err := csvimport.ReadSales(strings.NewReader("id,customer,product\n1,A,P1\n2,B,P2\n"))
	require.NoError(t, err)
	assert.Equal(t, []entity.Sale{{ID: "1", Customer: "A", Product: "P1"}, {ID: "2", Customer: "B", Product: "P2"}}, sales)

	customers, err := csvimport.ReadCustomers(strings.NewReader("id,name,email\nc1,Ana,ana@example.com\n"))
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "ana@example.com", customers[0].Email)
	assert.Empty(t, customers[0].Phone)
}

func TestReader_Latin1(t *testing.T) {
	latin1, err := charmap.ISO8859_1.NewEncoder().String("id,customer,product\n1,José Núñez,Batería\n")
	require.NoError(t, err)

	r, err := csvimport.Reader(bytes.NewReader([]byte(latin1)), csvimport.EncodingLatin1)
	require.NoError(t, err)
	sales, err := csvimport.ReadSales(r)
	require.NoError(t, err)
	assert.Equal(t, "José Núñez", sales[0].Customer)
	assert.Equal(t, "Batería", sales[0].Product)
}

func TestReader_EncodingDesconocido(t *testing.T) {
	_, err := csvimport.Reader(io.MultiReader(), "ebcdic")
	assert.Error(t, err)
}
