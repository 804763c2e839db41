package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetType partitions fixed assets for reconciliation and journal-entry
// account selection.
type AssetType string

const (
	AssetTypeComputerEquipment AssetType = "computer-equipment"
	AssetTypeFurniture         AssetType = "furniture"
)

// Asset is a depreciating fixed asset.
type Asset struct {
	ID          string
	Name        string
	DateInPlace time.Time // depreciation start; edits force schedule regeneration
	Account     string
	Department  string
	Cost        decimal.Decimal // immutable after creation
	LifeMonths  int
	MonthlyDep  decimal.Decimal // Cost / LifeMonths, 2 decimal places
	AccumDep    decimal.Decimal
	NBV         decimal.Decimal // Cost - AccumDep
	AssetType   AssetType       // fixed at creation

	// DepSchedule maps a month key ("M/YY") to the depreciation expense
	// recognized that month. Cumulative depreciation never exceeds Cost.
	DepSchedule map[string]decimal.Decimal
}

// ScheduleFor returns the depreciation recognized in the given month,
// zero if the month is not scheduled.
func (a *Asset) ScheduleFor(monthKey string) decimal.Decimal {
	return a.DepSchedule[monthKey]
}

// Active reports whether the asset participates in default aggregations.
// Assets are never deactivated; fully depreciated assets simply stop
// accruing in the schedule.
func (a *Asset) Active() bool { return true }

// Kind returns the record kind tag.
func (a *Asset) Kind() string { return "asset" }

// RecordID returns the record's opaque identifier.
func (a *Asset) RecordID() string { return a.ID }
