package accounts

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleared-dev/sie4/internal/model"
)

// Header is the CSV header written by WriteAccounts.
var Header = []string{"account_number", "description", "type", "type_code", "sru", "unit"}

const (
	numFields   = 6
	colNumber   = 0
	colDesc     = 1
	colType     = 2
	colTypeCode = 3
	colSRU      = 4
	colUnit     = 5
)

// Attribute keys set from #SRU and #ENHET.
const (
	AttrSRU  = "sru"
	AttrUnit = "unit"
)

// WriteAccounts writes a chart of accounts as CSV, header first.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colNumber] = acct.Number
	row[colDesc] = acct.Description
	row[colType] = string(acct.Type)
	row[colTypeCode] = CodeFromType(acct.Type)
	row[colSRU] = acct.Attributes[AttrSRU]
	row[colUnit] = acct.Attributes[AttrUnit]
	return row
}
