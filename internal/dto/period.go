package dto

import (
	"time"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// CreatePeriodRequest defines the data needed to open an accounting period.
type CreatePeriodRequest struct {
	Year  int    `json:"year" binding:"required,min=1900,max=9999"`
	Month int    `json:"month" binding:"required,min=1,max=12"`
	Name  string `json:"name" binding:"max=100"`
	Start string `json:"start" binding:"required,datetime=2006-01-02"`
	Close string `json:"close" binding:"required,datetime=2006-01-02"`
}

// PeriodResponse defines the data returned for an accounting period.
type PeriodResponse struct {
	ID        string             `json:"id"`
	Year      int                `json:"year"`
	Month     int                `json:"month"`
	Name      string             `json:"name"`
	Start     string             `json:"start"`
	Close     string             `json:"close"`
	State     domain.PeriodState `json:"state"`
	CreatedAt time.Time          `json:"createdAt"`
	CreatedBy string             `json:"createdBy"`
}

// ToPeriodResponse converts a domain.AccountingPeriod to its DTO.
func ToPeriodResponse(p *domain.AccountingPeriod) PeriodResponse {
	return PeriodResponse{
		ID:        p.ID,
		Year:      p.Year,
		Month:     p.Month,
		Name:      p.Name,
		Start:     p.Start.Format(domain.DateLayout),
		Close:     p.Close.Format(domain.DateLayout),
		State:     p.State,
		CreatedAt: p.CreatedAt,
		CreatedBy: p.CreatedBy,
	}
}

// ToPeriodResponses converts a slice of periods.
func ToPeriodResponses(periods []domain.AccountingPeriod) []PeriodResponse {
	out := make([]PeriodResponse, len(periods))
	for i := range periods {
		out[i] = ToPeriodResponse(&periods[i])
	}
	return out
}
