package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EntryFilter selects journal entries. All supplied predicates must hold.
type EntryFilter struct {
	DateFrom    *time.Time // inclusive
	DateTo      *time.Time // inclusive
	AccountCode string     // entry has a line posting to exactly this code
	PartyID     string     // entry has this counterparty on any line
}

// Matches reports whether the entry satisfies every predicate of the filter.
func (f EntryFilter) Matches(e JournalEntry) bool {
	if f.DateFrom != nil && e.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && e.Date.After(*f.DateTo) {
		return false
	}
	if f.AccountCode != "" && !e.TouchesAccount(f.AccountCode) {
		return false
	}
	if f.PartyID != "" && !e.HasParty(f.PartyID) {
		return false
	}
	return true
}

// Validate rejects filters whose date range is inverted.
func (f EntryFilter) Validate() error {
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return fmt.Errorf("dateFrom %s is after dateTo %s", f.DateFrom.Format(DateLayout), f.DateTo.Format(DateLayout))
	}
	return nil
}

// CacheKey renders the filter as a stable string for cache keys. Each part is
// quoted so separators inside codes or party ids cannot collide.
func (f EntryFilter) CacheKey() string {
	parts := []string{"", "", f.AccountCode, f.PartyID}
	if f.DateFrom != nil {
		parts[0] = f.DateFrom.Format(DateLayout)
	}
	if f.DateTo != nil {
		parts[1] = f.DateTo.Format(DateLayout)
	}
	for i, p := range parts {
		parts[i] = strconv.Quote(p)
	}
	return strings.Join(parts, "|")
}

// DateLayout is the calendar date format used by filters and entry dates.
const DateLayout = "2006-01-02"

// TruncateToDate drops the time-of-day of t, keeping the calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
