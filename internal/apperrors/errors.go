package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure in a collaborator.
var ErrInternal = errors.New("internal error")

// ErrPeriodClosed indicates an entry was dated inside a closed accounting period.
var ErrPeriodClosed = errors.New("accounting period is closed")

// ErrImmutable indicates an attempt to modify an admitted journal entry.
var ErrImmutable = errors.New("journal entries are immutable once admitted")

// AppError wraps an infrastructure failure with the HTTP status it should map to.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// LedgerErrorKind names the reason a proposed journal entry was rejected.
type LedgerErrorKind string

const (
	KindEmptyEntry          LedgerErrorKind = "EMPTY_ENTRY"
	KindUnknownAccount      LedgerErrorKind = "UNKNOWN_ACCOUNT"
	KindInvalidAmount       LedgerErrorKind = "INVALID_AMOUNT"
	KindMissingCounterparty LedgerErrorKind = "MISSING_COUNTERPARTY"
	KindUnbalancedEntry     LedgerErrorKind = "UNBALANCED_ENTRY"
)

// LedgerError is the structured rejection returned by the journal entry validator.
// It unwraps to ErrValidation.
type LedgerError struct {
	Kind        LedgerErrorKind
	Codes       []string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	// MinorUnits is the number of decimal places the totals are rendered with.
	MinorUnits int32
}

func (e *LedgerError) Error() string {
	switch e.Kind {
	case KindEmptyEntry:
		return "journal entry must include at least one posting line"
	case KindUnknownAccount:
		return fmt.Sprintf("accounts not found or inactive in chart of accounts: %s", strings.Join(e.Codes, ", "))
	case KindInvalidAmount:
		return fmt.Sprintf("invalid debit or credit amount for accounts: %s", strings.Join(e.Codes, ", "))
	case KindMissingCounterparty:
		return fmt.Sprintf("accounts require a counterparty: %s", strings.Join(e.Codes, ", "))
	case KindUnbalancedEntry:
		return fmt.Sprintf("total debit %s does not equal total credit %s", e.FormatAmount(e.TotalDebit), e.FormatAmount(e.TotalCredit))
	}
	return string(e.Kind)
}

// FormatAmount renders an amount with the error's minor units.
func (e *LedgerError) FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(e.MinorUnits)
}

func (e *LedgerError) Unwrap() error {
	return ErrValidation
}

// AsLedgerError extracts a LedgerError from the chain, if any.
func AsLedgerError(err error) (*LedgerError, bool) {
	var le *LedgerError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}
