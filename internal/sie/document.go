package sie

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/sie4/internal/model"
)

// Document holds the facts collected from one SIE file.
type Document struct {
	Flag           bool
	SieType        int
	Program        string
	ProgramVersion string
	Format         string
	Generated      time.Time
	GeneratedBy    string
	CompanyName    string
	OrgNumber      string
	CompanyType    string
	Address        Address
	FiscalYears    []FiscalYear
	Scope          time.Time
	TaxYear        int
	ChartType      string
	Currency       string

	IncomingBalances []Balance
	OutgoingBalances []Balance
	Results          []Balance

	Accounts   []model.Account
	Dimensions []model.Dimension

	// Unknown holds directives without a handler, in document order.
	Unknown []Directive
}

// Address is the contact information of #ADRESS.
type Address struct {
	Contact    string
	Street     string
	PostalCode string
	Phone      string
}

// FiscalYear is a #RAR entry. Index 0 is the current year, -1 the previous.
type FiscalYear struct {
	Index int
	Start time.Time
	End   time.Time
}

// Balance is an #IB, #UB or #RES entry.
type Balance struct {
	Year     int
	Account  string
	Amount   model.Amount
	Quantity decimal.NullDecimal
}

// FiscalYear returns the #RAR entry with index.
func (d *Document) FiscalYear(index int) (FiscalYear, bool) {
	for _, fy := range d.FiscalYears {
		if fy.Index == index {
			return fy, true
		}
	}
	return FiscalYear{}, false
}
