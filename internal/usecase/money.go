package usecase

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var boPrinter = message.NewPrinter(language.MustParse("es-BO"))

// FormatBs renders an amount the way Bolivian customers read it, e.g. "150,50".
// The integer part goes through the locale printer for grouping; cents are
// taken from the decimal string so no precision is lost.
func FormatBs(d decimal.Decimal) string {
	r := d.Round(2)
	fixed := r.Abs().StringFixed(2)

	sign := ""
	if r.IsNegative() {
		sign = "-"
	}
	return sign + boPrinter.Sprintf("%d", r.Abs().IntPart()) + "," + fixed[len(fixed)-2:]
}
