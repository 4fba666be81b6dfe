package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-entregas/pkg/money"
)

func TestNewFormatter_MonedaInvalida(t *testing.T) {
	_, err := money.NewFormatter("XX", "es-CO")
	assert.Error(t, err)
}

func TestNewFormatter_LocaleInvalido(t *testing.T) {
	_, err := money.NewFormatter("USD", "not a locale!")
	assert.Error(t, err)
}

func TestFormat_SeparadorDeMilesYDecimales(t *testing.T) {
	f, err := money.NewFormatter("USD", "en")
	require.NoError(t, err)

	out := f.Format(decimal.RequireFromString("1234.5"))
	assert.Contains(t, out, "1,234.50")
	assert.Equal(t, "USD", f.Currency())
}
