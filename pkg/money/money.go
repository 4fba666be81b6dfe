// Package money formatea montos decimales como moneda según la configuración regional.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formatea montos en una moneda ISO 4217 con separadores del locale.
type Formatter struct {
	tag   language.Tag
	unit  currency.Unit
	scale int
}

// NewFormatter construye el formateador. code es el código ISO (COP, USD...), locale un tag BCP 47 (es-CO).
func NewFormatter(code, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("money: moneda %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("money: locale %q: %w", locale, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return &Formatter{tag: tag, unit: unit, scale: scale}, nil
}

// Currency devuelve el código ISO de la moneda.
func (f *Formatter) Currency() string { return f.unit.String() }

// Format devuelve el monto redondeado a la escala estándar de la moneda, con símbolo y separadores de miles.
// Ej (es-CO, COP): "$ 1.234.500,00".
func (f *Formatter) Format(d decimal.Decimal) string {
	// message.Printer no es seguro entre goroutines: uno por llamada.
	p := message.NewPrinter(f.tag)
	v, _ := d.Round(int32(f.scale)).Float64()
	number := p.Sprintf(fmt.Sprintf("%%.%df", f.scale), v)
	return p.Sprint(currency.Symbol(f.unit)) + " " + number
}
