package sie

import (
	"github.com/cleared-dev/sie4/internal/accounts"
	"github.com/cleared-dev/sie4/internal/config"
	"github.com/cleared-dev/sie4/internal/diag"
	"github.com/cleared-dev/sie4/internal/dimensions"
)

// Factory creates ready-to-use Parsers sharing a configuration and logger.
type Factory struct {
	currency string
	logger   diag.Logger
}

// NewFactory creates a Factory. A nil logger discards diagnostics.
func NewFactory(cfg config.ParserConfig, logger diag.Logger) *Factory {
	if logger == nil {
		logger = diag.Discard()
	}
	return &Factory{currency: cfg.Currency, logger: logger}
}

// NewParser returns a Parser with fresh account and dimension builders.
func (f *Factory) NewParser(opts ...Option) *Parser {
	var all []Option
	if f.currency != "" {
		all = append(all, WithCurrency(f.currency))
	}
	all = append(all, opts...)
	return NewParser(f.logger, accounts.NewBuilder(f.logger), dimensions.NewBuilder(f.logger), all...)
}

// Parse parses src with a fresh Parser.
func (f *Factory) Parse(src []byte) (*Document, error) {
	return f.NewParser().Parse(src)
}
