package accounting

import "github.com/SscSPs/property_ledger/internal/core/domain"

// ChartIndex gives constant-time lookup of accounts by code while keeping chart order.
type ChartIndex struct {
	accounts []domain.Account
	byCode   map[string]int
}

// IndexChart builds a ChartIndex. When a code appears twice the first occurrence wins.
func IndexChart(accounts []domain.Account) ChartIndex {
	idx := ChartIndex{
		accounts: make([]domain.Account, 0, len(accounts)),
		byCode:   make(map[string]int, len(accounts)),
	}
	for _, acc := range accounts {
		if _, dup := idx.byCode[acc.Code]; dup {
			continue
		}
		idx.byCode[acc.Code] = len(idx.accounts)
		idx.accounts = append(idx.accounts, acc)
	}
	return idx
}

// Lookup returns the account with the given code.
func (c ChartIndex) Lookup(code string) (domain.Account, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return domain.Account{}, false
	}
	return c.accounts[i], true
}

// IsPostable reports whether code exists and is active.
func (c ChartIndex) IsPostable(code string) bool {
	acc, ok := c.Lookup(code)
	return ok && acc.Active
}

// Accounts returns the accounts in chart order.
func (c ChartIndex) Accounts() []domain.Account {
	return c.accounts
}

// Len returns the number of distinct accounts.
func (c ChartIndex) Len() int {
	return len(c.accounts)
}
