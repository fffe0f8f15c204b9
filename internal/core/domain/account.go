package domain

import (
	"fmt"
	"strings"
)

// AccountClass is the top-level classification of an account, derived from the
// first digit of its code.
type AccountClass string

const (
	Asset     AccountClass = "ASSET"
	Liability AccountClass = "LIABILITY"
	Equity    AccountClass = "EQUITY"
	Income    AccountClass = "INCOME"
	Expense   AccountClass = "EXPENSE"
	Other     AccountClass = "OTHER"
)

// codeSegmentLengths maps each hierarchy level (index+1) to the length of its code:
// class, group, account, subaccount, auxiliary, and a second auxiliary level.
var codeSegmentLengths = []int{1, 2, 4, 6, 8, 10}

// MaxAccountLevel is the deepest level a code can encode.
const MaxAccountLevel = 6

// Account represents a node of the chart of accounts.
type Account struct {
	Code               string `json:"code"` // Unique, hierarchical key
	Name               string `json:"name"`
	ClassName          string `json:"className"` // Human label of the top-level class
	Level              int    `json:"level"`
	IsDebitNormal      bool   `json:"isDebitNormal"`
	TracksCounterparty bool   `json:"tracksCounterparty"`
	Active             bool   `json:"active"` // Soft delete flag
	AuditFields
}

// Class derives the account class from the leading digit of the code.
func (a Account) Class() AccountClass {
	return ClassForCode(a.Code)
}

// ParentCode returns the code of the parent account, or "" for a level-1 code.
func (a Account) ParentCode() string {
	return ParentCode(a.Code)
}

// ClassForCode maps the first digit of a code to its AccountClass.
func ClassForCode(code string) AccountClass {
	if code == "" {
		return Other
	}
	switch code[0] {
	case '1':
		return Asset
	case '2':
		return Liability
	case '3':
		return Equity
	case '4':
		return Income
	case '5':
		return Expense
	}
	return Other
}

// IsDebitNormalClass reports the natural balance side of a class.
func IsDebitNormalClass(class AccountClass) bool {
	return class == Asset || class == Expense
}

// LevelForCode returns the hierarchy level implied by the length of the code.
func LevelForCode(code string) (int, error) {
	if code == "" {
		return 0, fmt.Errorf("account code is empty")
	}
	if strings.IndexFunc(code, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, fmt.Errorf("account code %q must contain only digits", code)
	}
	for i, l := range codeSegmentLengths {
		if len(code) == l {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("account code %q has invalid length %d", code, len(code))
}

// ParentCode returns the prefix of code at the previous hierarchy level.
func ParentCode(code string) string {
	level, err := LevelForCode(code)
	if err != nil || level <= 1 {
		return ""
	}
	return code[:codeSegmentLengths[level-2]]
}
