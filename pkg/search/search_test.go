package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-entregas/pkg/search"
)

type row struct {
	name     string
	supplier string
}

var rows = []row{
	{"Panel Monocristalino 450W", "SolarCo"},
	{"Inversor híbrido", "Voltex"},
	{"Batería de litio", "solarco"},
}

func byName(r row) string     { return r.name }
func bySupplier(r row) string { return r.supplier }

func TestFilter_SinConsultaDevuelveTodo(t *testing.T) {
	out := search.Filter(rows, "   ", byName)
	assert.Equal(t, rows, out)
}

func TestFilter_IgnoraMayusculas(t *testing.T) {
	out := search.Filter(rows, "PANEL", byName)
	assert.Len(t, out, 1)
	assert.Equal(t, "Panel Monocristalino 450W", out[0].name)
}

func TestFilter_PreservaOrdenYUsaVariosCampos(t *testing.T) {
	out := search.Filter(rows, "solarco", byName, bySupplier)
	assert.Len(t, out, 2)
	assert.Equal(t, "Panel Monocristalino 450W", out[0].name)
	assert.Equal(t, "Batería de litio", out[1].name)
}

func TestFilter_SoloCamposIndicados(t *testing.T) {
	assert.Empty(t, search.Filter(rows, "voltex", byName))
	assert.Len(t, search.Filter(rows, "voltex", bySupplier), 1)
}

func TestFilter_Acentos(t *testing.T) {
	out := search.Filter(rows, "BATERÍA", byName)
	assert.Len(t, out, 1)
}
