package domain

import "time"

// PeriodState indicates whether entries can still be admitted into a period.
type PeriodState string

const (
	PeriodOpen   PeriodState = "OPEN"
	PeriodClosed PeriodState = "CLOSED"
)

// AccountingPeriod is a monthly accounting window covering [Start, Close).
type AccountingPeriod struct {
	ID    string      `json:"id"`
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Name  string      `json:"name"`
	Start time.Time   `json:"start"`
	Close time.Time   `json:"close"`
	State PeriodState `json:"state"`
	AuditFields
}

// Contains reports whether t falls inside [Start, Close).
func (p AccountingPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.Close)
}
