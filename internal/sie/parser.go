package sie

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/sie4/internal/accounts"
	"github.com/cleared-dev/sie4/internal/diag"
	"github.com/cleared-dev/sie4/internal/dimensions"
	"github.com/cleared-dev/sie4/internal/model"
)

// UnknownFunc receives directives whose label has no handler.
type UnknownFunc func(label string, fields []string)

// Option configures a Parser.
type Option func(*Parser)

// WithCurrency sets the currency of amounts until #VALUTA says otherwise.
func WithCurrency(code string) Option {
	return func(p *Parser) { p.grammar.SetCurrency(code) }
}

// WithUnknownHandler registers fn to be called for every unknown directive.
func WithUnknownHandler(fn UnknownFunc) Option {
	return func(p *Parser) { p.onUnknown = fn }
}

// Parser applies directives to an account and a dimension builder, in
// document order. Use a fresh Parser, with fresh builders, per document.
type Parser struct {
	grammar    *Grammar
	accounts   *accounts.Builder
	dimensions *dimensions.Builder
	logger     diag.Logger
	onUnknown  UnknownFunc
	doc        *Document
}

// NewParser creates a Parser writing to the given builders.
func NewParser(logger diag.Logger, accts *accounts.Builder, dims *dimensions.Builder, opts ...Option) *Parser {
	p := &Parser{
		grammar:    NewGrammar(model.DefaultCurrency),
		accounts:   accts,
		dimensions: dims,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Accounts returns the account builder.
func (p *Parser) Accounts() *accounts.Builder { return p.accounts }

// Dimensions returns the dimension builder.
func (p *Parser) Dimensions() *dimensions.Builder { return p.dimensions }

// Parse reads src and returns the collected document. Syntax errors and
// unavailable accounts abort the parse; no document is returned then and the
// builders should be discarded.
func (p *Parser) Parse(src []byte) (*Document, error) {
	p.doc = &Document{}
	for d, err := range Directives(src) {
		if err != nil {
			return nil, err
		}
		if err := p.dispatch(d); err != nil {
			return nil, err
		}
	}

	doc := p.doc
	p.doc = nil
	doc.Currency = p.grammar.Currency()
	doc.Accounts = p.accounts.All()
	doc.Dimensions = p.dimensions.All()
	return doc, nil
}

type handler func(p *Parser, args []interface{}) error

var handlers = map[string]handler{
	"FLAGGA":   (*Parser).onFlagga,
	"SIETYP":   (*Parser).onSietyp,
	"PROGRAM":  (*Parser).onProgram,
	"FORMAT":   (*Parser).onFormat,
	"GEN":      (*Parser).onGen,
	"FNAMN":    (*Parser).onFnamn,
	"ORGNR":    (*Parser).onOrgnr,
	"FTYP":     (*Parser).onFtyp,
	"ADRESS":   (*Parser).onAdress,
	"RAR":      (*Parser).onRar,
	"OMFATTN":  (*Parser).onOmfattn,
	"TAXAR":    (*Parser).onTaxar,
	"KPTYP":    (*Parser).onKptyp,
	"VALUTA":   (*Parser).onValuta,
	"KONTO":    (*Parser).onKonto,
	"KTYP":     (*Parser).onKtyp,
	"ENHET":    (*Parser).onEnhet,
	"SRU":      (*Parser).onSru,
	"DIM":      (*Parser).onDim,
	"UNDERDIM": (*Parser).onUnderdim,
	"OBJEKT":   (*Parser).onObjekt,
	"IB":       (*Parser).onIb,
	"UB":       (*Parser).onUb,
	"RES":      (*Parser).onRes,
}

func (p *Parser) dispatch(d Directive) error {
	args, known, err := p.grammar.Coerce(d)
	if err != nil {
		return err
	}
	h, ok := handlers[d.Label]
	if !known || !ok {
		p.unknown(d)
		return nil
	}
	if err := h(p, args); err != nil {
		return fmt.Errorf("line %d: #%s: %w", d.Line, d.Label, err)
	}
	return nil
}

func (p *Parser) unknown(d Directive) {
	diag.Debug(p.logger, "unknown label", "label", d.Label, "line", d.Line)
	p.doc.Unknown = append(p.doc.Unknown, d)
	if p.onUnknown != nil {
		p.onUnknown(d.Label, d.Values())
	}
}

func (p *Parser) onFlagga(args []interface{}) error {
	p.doc.Flag = args[0].(bool)
	return nil
}

func (p *Parser) onSietyp(args []interface{}) error {
	p.doc.SieType = args[0].(int)
	return nil
}

func (p *Parser) onProgram(args []interface{}) error {
	p.doc.Program = args[0].(string)
	p.doc.ProgramVersion = optString(args, 1)
	return nil
}

func (p *Parser) onFormat(args []interface{}) error {
	p.doc.Format = args[0].(string)
	return nil
}

func (p *Parser) onGen(args []interface{}) error {
	p.doc.Generated = args[0].(time.Time)
	p.doc.GeneratedBy = optString(args, 1)
	return nil
}

func (p *Parser) onFnamn(args []interface{}) error {
	p.doc.CompanyName = args[0].(string)
	return nil
}

func (p *Parser) onOrgnr(args []interface{}) error {
	p.doc.OrgNumber = args[0].(string)
	return nil
}

func (p *Parser) onFtyp(args []interface{}) error {
	p.doc.CompanyType = args[0].(string)
	return nil
}

func (p *Parser) onAdress(args []interface{}) error {
	p.doc.Address = Address{
		Contact:    args[0].(string),
		Street:     args[1].(string),
		PostalCode: args[2].(string),
		Phone:      args[3].(string),
	}
	return nil
}

func (p *Parser) onRar(args []interface{}) error {
	p.doc.FiscalYears = append(p.doc.FiscalYears, FiscalYear{
		Index: args[0].(int),
		Start: args[1].(time.Time),
		End:   args[2].(time.Time),
	})
	return nil
}

func (p *Parser) onOmfattn(args []interface{}) error {
	p.doc.Scope = args[0].(time.Time)
	return nil
}

func (p *Parser) onTaxar(args []interface{}) error {
	p.doc.TaxYear = args[0].(int)
	return nil
}

func (p *Parser) onKptyp(args []interface{}) error {
	p.doc.ChartType = args[0].(string)
	return nil
}

func (p *Parser) onValuta(args []interface{}) error {
	code := args[0].(string)
	if !model.KnownCurrency(code) {
		diag.Warn(p.logger, "Unknown currency %s, keeping %s", code, p.grammar.Currency())
		return nil
	}
	p.grammar.SetCurrency(code)
	return nil
}

func (p *Parser) onKonto(args []interface{}) error {
	p.accounts.Add(args[0].(string), args[1].(string))
	return nil
}

func (p *Parser) onKtyp(args []interface{}) error {
	return p.accounts.SetType(args[0].(string), args[1].(string))
}

func (p *Parser) onEnhet(args []interface{}) error {
	return p.accounts.SetAttribute(args[0].(string), accounts.AttrUnit, args[1].(string))
}

func (p *Parser) onSru(args []interface{}) error {
	return p.accounts.SetAttribute(args[0].(string), accounts.AttrSRU, fmt.Sprint(args[1].(int)))
}

func (p *Parser) onDim(args []interface{}) error {
	p.dimensions.Add(args[0].(int), args[1].(string), 0)
	return nil
}

func (p *Parser) onUnderdim(args []interface{}) error {
	p.dimensions.Add(args[0].(int), args[1].(string), args[2].(int))
	return nil
}

func (p *Parser) onObjekt(args []interface{}) error {
	p.dimensions.AddObject(args[0].(int), args[1].(int), args[2].(string))
	return nil
}

func (p *Parser) onIb(args []interface{}) error {
	b, err := p.balance(args)
	if err != nil {
		return err
	}
	p.doc.IncomingBalances = append(p.doc.IncomingBalances, b)
	return nil
}

func (p *Parser) onUb(args []interface{}) error {
	b, err := p.balance(args)
	if err != nil {
		return err
	}
	p.doc.OutgoingBalances = append(p.doc.OutgoingBalances, b)
	return nil
}

func (p *Parser) onRes(args []interface{}) error {
	b, err := p.balance(args)
	if err != nil {
		return err
	}
	p.doc.Results = append(p.doc.Results, b)
	return nil
}

// balance resolves the account of an #IB, #UB or #RES entry.
func (p *Parser) balance(args []interface{}) (Balance, error) {
	acct, err := p.accounts.Get(args[1].(string))
	if err != nil {
		return Balance{}, err
	}
	b := Balance{
		Year:    args[0].(int),
		Account: acct.Number,
		Amount:  args[2].(model.Amount),
	}
	if len(args) > 3 {
		b.Quantity = decimal.NewNullDecimal(args[3].(decimal.Decimal))
	}
	return b, nil
}

func optString(args []interface{}, i int) string {
	if i < len(args) {
		return args[i].(string)
	}
	return ""
}
