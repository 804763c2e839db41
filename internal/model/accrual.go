package model

import "github.com/shopspring/decimal"

// MonthlyEntry is one month of an accrual: the reversal of the prior
// month's accrual (conventionally <= 0) and the new accrual (>= 0).
type MonthlyEntry struct {
	Reversal decimal.Decimal
	Accrual  decimal.Decimal
}

// Net returns reversal + accrual for the month.
func (e MonthlyEntry) Net() decimal.Decimal {
	return e.Reversal.Add(e.Accrual)
}

// Accrual is an accrued expense tracked month over month.
type Accrual struct {
	ID          string
	Vendor      string
	Description string
	JEAccountDR string // 4-6 digit account code
	JEAccountCR string
	Balance     decimal.Decimal // normally sum of monthly nets; may be overridden
	IsActive    bool

	// MonthlyEntries maps a month key ("M/YY") to that month's
	// reversal/accrual pair.
	MonthlyEntries map[string]MonthlyEntry
}

// ComputedBalance sums reversal + accrual over all monthly entries.
func (a *Accrual) ComputedBalance() decimal.Decimal {
	total := decimal.Zero
	for _, e := range a.MonthlyEntries {
		total = total.Add(e.Net())
	}
	return total
}

// ScheduleFor returns the net movement for the given month.
func (a *Accrual) ScheduleFor(monthKey string) decimal.Decimal {
	return a.MonthlyEntries[monthKey].Net()
}

// Active reports whether the accrual participates in default aggregations.
func (a *Accrual) Active() bool { return a.IsActive }

// Kind returns the record kind tag.
func (a *Accrual) Kind() string { return "accrual" }

// RecordID returns the record's opaque identifier.
func (a *Accrual) RecordID() string { return a.ID }
