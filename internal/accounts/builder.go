// Package accounts builds the chart of accounts of a SIE document.
package accounts

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/sie4/internal/diag"
	"github.com/cleared-dev/sie4/internal/model"
)

// Unspecified is the description given to synthesized accounts.
const Unspecified = "UNSPECIFIED"

// ErrAccountUnavailable is returned when an account is neither declared nor
// creatable.
var ErrAccountUnavailable = errors.New("account unavailable")

// Builder creates and keeps track of accounts, keyed by number. A Builder
// belongs to a single parse and is not safe for concurrent use.
type Builder struct {
	logger   diag.Logger
	accounts map[string]model.Account
	order    []string
}

// NewBuilder creates an empty Builder reporting to logger.
func NewBuilder(logger diag.Logger) *Builder {
	return &Builder{
		logger:   logger,
		accounts: make(map[string]model.Account),
	}
}

// Add creates an account of unspecified type, replacing any previous account
// with the same number. An account that can not be created is logged and the
// registry is left unchanged.
func (b *Builder) Add(number, description string) {
	if _, ok := b.accounts[number]; ok {
		diag.Warn(b.logger, "Overwriting previously created account %s", number)
	}

	acct, err := model.NewAccount(number, description, model.AccountTypeUnspecified, nil)
	if err != nil {
		diag.Warn(b.logger, "Unable to create account %s (%s): %v", number, description, err)
		return
	}
	b.store(acct)
}

// SetType reclassifies account number using a #KTYP code. Unknown codes are
// logged and ignored.
func (b *Builder) SetType(number, code string) error {
	typ, ok := TypeFromCode(code)
	if !ok {
		diag.Warn(b.logger, "Unknown type %s for account number %s", code, number)
		return nil
	}

	acct, err := b.Get(number)
	if err != nil {
		return err
	}

	acct, err = acct.WithType(typ)
	if err != nil {
		return fmt.Errorf("setting type of account %s: %w", number, err)
	}
	b.store(acct)
	return nil
}

// SetAttribute stores key=value on account number.
func (b *Builder) SetAttribute(number, key, value string) error {
	acct, err := b.Get(number)
	if err != nil {
		return err
	}

	acct, err = acct.WithAttribute(key, value)
	if err != nil {
		return fmt.Errorf("setting %s of account %s: %w", key, number, err)
	}
	b.store(acct)
	return nil
}

// Get returns account number. Undeclared accounts are created with an
// unspecified description; if that fails ErrAccountUnavailable is returned.
func (b *Builder) Get(number string) (model.Account, error) {
	if acct, ok := b.accounts[number]; ok {
		return acct, nil
	}

	diag.Warn(b.logger, "Account number %s not defined", number)
	b.Add(number, Unspecified)

	acct, ok := b.accounts[number]
	if !ok {
		return model.Account{}, fmt.Errorf("unable to get account %s: %w", number, ErrAccountUnavailable)
	}
	return acct, nil
}

// Exists reports whether account number has been created.
func (b *Builder) Exists(number string) bool {
	_, ok := b.accounts[number]
	return ok
}

// All returns all accounts in the order they were first created.
func (b *Builder) All() []model.Account {
	out := make([]model.Account, 0, len(b.order))
	for _, n := range b.order {
		out = append(out, b.accounts[n])
	}
	return out
}

// ByType returns all accounts of the given type.
func (b *Builder) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range b.All() {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Len returns the number of accounts.
func (b *Builder) Len() int {
	return len(b.order)
}

func (b *Builder) store(acct model.Account) {
	if _, ok := b.accounts[acct.Number]; !ok {
		b.order = append(b.order, acct.Number)
	}
	b.accounts[acct.Number] = acct
}
