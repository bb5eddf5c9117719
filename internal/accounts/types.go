package accounts

import "github.com/cleared-dev/sie4/internal/model"

// typeCodes maps #KTYP codes to account types.
var typeCodes = map[string]model.AccountType{
	"T": model.AccountTypeAsset,
	"S": model.AccountTypeDebt,
	"K": model.AccountTypeCost,
	"I": model.AccountTypeEarning,
}

// TypeFromCode returns the account type of a #KTYP code (T, S, K or I).
func TypeFromCode(code string) (model.AccountType, bool) {
	t, ok := typeCodes[code]
	return t, ok
}

// CodeFromType is the inverse of TypeFromCode. Unspecified has no code.
func CodeFromType(t model.AccountType) string {
	for code, typ := range typeCodes {
		if typ == t {
			return code
		}
	}
	return ""
}
