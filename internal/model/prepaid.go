package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmortEntry is one month of a prepaid amortization schedule.
type AmortEntry struct {
	Amortization     decimal.Decimal
	RemainingBalance decimal.Decimal
	IsActual         bool // true once the month's amount reflects a posted actual
}

// Prepaid is a prepaid expense amortized straight-line over its term.
type Prepaid struct {
	ID          string
	Vendor      string
	Description string
	JEAccountDR string
	JEAccountCR string
	IsActive    bool

	InitialAmount       decimal.Decimal
	StartDate           time.Time
	EndDate             time.Time
	TermMonths          int
	MonthlyAmortization decimal.Decimal // InitialAmount / TermMonths
	CurrentBalance      decimal.Decimal // remaining balance after the last entry

	// Schedule maps a month key ("M/YY") to that month's amortization
	// and the balance remaining after it.
	Schedule map[string]AmortEntry
}

// IsFullyAmortized reports whether the remaining balance is exhausted.
func (p *Prepaid) IsFullyAmortized() bool {
	return p.CurrentBalance.LessThanOrEqual(decimal.NewFromFloat(0.01))
}

// ScheduleFor returns the amortization recognized in the given month.
func (p *Prepaid) ScheduleFor(monthKey string) decimal.Decimal {
	return p.Schedule[monthKey].Amortization
}

// Active reports whether the prepaid participates in default aggregations.
func (p *Prepaid) Active() bool { return p.IsActive }

// Kind returns the record kind tag.
func (p *Prepaid) Kind() string { return "prepaid" }

// RecordID returns the record's opaque identifier.
func (p *Prepaid) RecordID() string { return p.ID }
