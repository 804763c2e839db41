package model

import "github.com/shopspring/decimal"

// Scheduler is the schedule-bearing shape shared by assets, accruals, and
// prepaids. The aggregator operates on records only through this interface.
type Scheduler interface {
	// ScheduleFor returns the amount recognized in the given month,
	// zero if the month is not scheduled.
	ScheduleFor(monthKey string) decimal.Decimal
	// Active reports whether the record participates in default
	// aggregations.
	Active() bool
}

// Record is a persistable schedule-bearing record.
type Record interface {
	Scheduler
	Kind() string
	RecordID() string
}
