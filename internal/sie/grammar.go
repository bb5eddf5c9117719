package sie

import (
	"fmt"
	"sort"

	"github.com/cleared-dev/sie4/internal/model"
)

// signature declares the field kinds of a label. Fields past required are
// optional; fields past the declared kinds are ignored.
type signature struct {
	kinds    []Kind
	required int
}

func sig(required int, kinds ...Kind) signature {
	return signature{kinds: kinds, required: required}
}

// signatures lists the labels whose fields are coerced.
var signatures = map[string]signature{
	"FLAGGA":   sig(1, KindBool),
	"SIETYP":   sig(1, KindInt),
	"PROGRAM":  sig(1, KindString, KindString),
	"FORMAT":   sig(1, KindString),
	"GEN":      sig(1, KindDate, KindString),
	"FNAMN":    sig(1, KindString),
	"ORGNR":    sig(1, KindString, KindInt, KindInt),
	"FTYP":     sig(1, KindString),
	"ADRESS":   sig(4, KindString, KindString, KindString, KindString),
	"RAR":      sig(3, KindInt, KindDate, KindDate),
	"OMFATTN":  sig(1, KindDate),
	"TAXAR":    sig(1, KindInt),
	"KPTYP":    sig(1, KindString),
	"VALUTA":   sig(1, KindString),
	"KONTO":    sig(2, KindString, KindString),
	"KTYP":     sig(2, KindString, KindString),
	"ENHET":    sig(2, KindString, KindString),
	"SRU":      sig(2, KindString, KindInt),
	"DIM":      sig(2, KindInt, KindString),
	"UNDERDIM": sig(3, KindInt, KindString, KindInt),
	"OBJEKT":   sig(3, KindInt, KindInt, KindString),
	"IB":       sig(3, KindInt, KindString, KindAmount, KindDecimal),
	"UB":       sig(3, KindInt, KindString, KindAmount, KindDecimal),
	"RES":      sig(3, KindInt, KindString, KindAmount, KindDecimal),
}

// Known reports whether label has a declared signature.
func Known(label string) bool {
	_, ok := signatures[label]
	return ok
}

// Labels returns the declared labels in sorted order.
func Labels() []string {
	labels := make([]string, 0, len(signatures))
	for l := range signatures {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Grammar coerces directive fields to typed values. It tracks the currency
// that applies to amount fields, which a document may change with #VALUTA.
type Grammar struct {
	currency string
}

// NewGrammar returns a Grammar whose amounts default to currency.
func NewGrammar(currency string) *Grammar {
	if currency == "" {
		currency = model.DefaultCurrency
	}
	return &Grammar{currency: currency}
}

// Currency returns the currency applied to amount fields.
func (g *Grammar) Currency() string { return g.currency }

// SetCurrency changes the currency of subsequent amount fields.
func (g *Grammar) SetCurrency(code string) { g.currency = code }

// Coerce converts the fields of a known directive to their declared kinds:
// bool, int, string, time.Time, model.Amount or decimal.Decimal.
// ok is false for labels without a signature.
func (g *Grammar) Coerce(d Directive) (values []interface{}, ok bool, err error) {
	s, ok := signatures[d.Label]
	if !ok {
		return nil, false, nil
	}
	if len(d.Fields) < s.required {
		return nil, true, &SyntaxError{
			Line:  d.Line,
			Label: d.Label,
			Msg:   fmt.Sprintf("expected at least %d fields, got %d", s.required, len(d.Fields)),
		}
	}

	n := min(len(d.Fields), len(s.kinds))
	values = make([]interface{}, n)
	for i := 0; i < n; i++ {
		v, err := coerce(d.Fields[i], s.kinds[i], g.currency)
		if err != nil {
			return nil, true, &SyntaxError{
				Line:  d.Line,
				Label: d.Label,
				Msg:   fmt.Sprintf("field %d: expected %s: %v", i+1, s.kinds[i], err),
			}
		}
		values[i] = v
	}
	return values, true, nil
}
