// Package validate applies per-record business rules and partitions
// records into valid and invalid sets. Failures are collected with
// reasons, never thrown; non-fatal inconsistencies surface as warnings.
package validate

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/assetline-dev/assetline/internal/model"
)

var accountCodeRe = regexp.MustCompile(`^\d{4,6}$`)

const (
	maxVendorLen      = 100
	maxDescriptionLen = 255
)

// Rejection pairs an invalid record with the rules it broke.
type Rejection struct {
	Record  model.Record
	Reasons []string
}

// Partition is the outcome of validating a batch:
// len(Valid) + len(Invalid) always equals the input length.
type Partition struct {
	Valid    []model.Record
	Invalid  []Rejection
	Warnings []string
}

func (p *Partition) accept(r model.Record) {
	p.Valid = append(p.Valid, r)
}

func (p *Partition) reject(r model.Record, reasons []string) {
	p.Invalid = append(p.Invalid, Rejection{Record: r, Reasons: reasons})
}

func (p *Partition) warnf(format string, args ...any) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

// Options tunes validation behavior.
type Options struct {
	// Epsilon is the tolerated gap between an accrual's stated balance
	// and the sum of its monthly entries. Zero means the 0.01 default.
	Epsilon decimal.Decimal
	// ManualAdd tightens the asset cost rule from >= 0 to > 0, for
	// records entered by hand rather than imported.
	ManualAdd bool
}

func (o Options) epsilon() decimal.Decimal {
	if o.Epsilon.IsZero() {
		return decimal.NewFromFloat(0.01)
	}
	return o.Epsilon
}

// Records validates a mixed batch, dispatching on record kind.
func Records(records []model.Record, opts Options) Partition {
	var p Partition
	for _, r := range records {
		switch rec := r.(type) {
		case *model.Asset:
			checkAsset(&p, rec, opts)
		case *model.Accrual:
			checkAccrual(&p, rec, opts)
		case *model.Prepaid:
			checkPrepaid(&p, rec)
		default:
			p.reject(r, []string{fmt.Sprintf("unknown record kind %q", r.Kind())})
		}
	}
	return p
}

// Assets validates a batch of assets.
func Assets(assets []*model.Asset, opts Options) Partition {
	records := make([]model.Record, len(assets))
	for i, a := range assets {
		records[i] = a
	}
	return Records(records, opts)
}

// Accruals validates a batch of accruals.
func Accruals(accruals []*model.Accrual, opts Options) Partition {
	records := make([]model.Record, len(accruals))
	for i, a := range accruals {
		records[i] = a
	}
	return Records(records, opts)
}

// Prepaids validates a batch of prepaids.
func Prepaids(prepaids []*model.Prepaid, opts Options) Partition {
	records := make([]model.Record, len(prepaids))
	for i, p := range prepaids {
		records[i] = p
	}
	return Records(records, opts)
}

func checkAsset(p *Partition, a *model.Asset, opts Options) {
	var reasons []string
	if a.Name == "" {
		reasons = append(reasons, "name is required")
	}
	if a.DateInPlace.IsZero() {
		reasons = append(reasons, "date in place is required")
	}
	if a.Cost.IsNegative() {
		reasons = append(reasons, "cost must not be negative")
	} else if opts.ManualAdd && a.Cost.IsZero() {
		reasons = append(reasons, "cost must be positive")
	}
	if a.LifeMonths <= 0 {
		reasons = append(reasons, "life months must be positive")
	}

	if len(reasons) > 0 {
		p.reject(a, reasons)
		return
	}

	// Cumulative schedule depreciation must never exceed cost.
	total := decimal.Zero
	for _, v := range a.DepSchedule {
		total = total.Add(v)
	}
	if total.GreaterThan(a.Cost) {
		p.warnf("asset %q: scheduled depreciation %s exceeds cost %s",
			a.Name, total.StringFixed(2), a.Cost.StringFixed(2))
	}
	p.accept(a)
}

func checkAccrual(p *Partition, a *model.Accrual, opts Options) {
	var reasons []string
	if a.Vendor == "" {
		reasons = append(reasons, "vendor is required")
	} else if len(a.Vendor) > maxVendorLen {
		reasons = append(reasons, fmt.Sprintf("vendor exceeds %d characters", maxVendorLen))
	}
	if len(a.Description) > maxDescriptionLen {
		reasons = append(reasons, fmt.Sprintf("description exceeds %d characters", maxDescriptionLen))
	}
	if a.JEAccountDR != "" && !accountCodeRe.MatchString(a.JEAccountDR) {
		reasons = append(reasons, fmt.Sprintf("DR account %q is not a 4-6 digit code", a.JEAccountDR))
	}
	if a.JEAccountCR != "" && !accountCodeRe.MatchString(a.JEAccountCR) {
		reasons = append(reasons, fmt.Sprintf("CR account %q is not a 4-6 digit code", a.JEAccountCR))
	}

	if len(reasons) > 0 {
		p.reject(a, reasons)
		return
	}

	// A balance that disagrees with the monthly entries is a warning,
	// not a failure: overridden balances are legitimate.
	diff := a.Balance.Sub(a.ComputedBalance()).Abs()
	if diff.GreaterThan(opts.epsilon()) {
		p.warnf("accrual %q: stated balance %s differs from computed %s by %s",
			a.Vendor, a.Balance.StringFixed(2), a.ComputedBalance().StringFixed(2), diff.StringFixed(2))
	}
	p.accept(a)
}

func checkPrepaid(p *Partition, pp *model.Prepaid) {
	var reasons []string
	if pp.Vendor == "" {
		reasons = append(reasons, "vendor is required")
	} else if len(pp.Vendor) > maxVendorLen {
		reasons = append(reasons, fmt.Sprintf("vendor exceeds %d characters", maxVendorLen))
	}
	if len(pp.Description) > maxDescriptionLen {
		reasons = append(reasons, fmt.Sprintf("description exceeds %d characters", maxDescriptionLen))
	}
	if pp.InitialAmount.IsNegative() {
		reasons = append(reasons, "initial amount must not be negative")
	}
	if pp.TermMonths <= 0 {
		reasons = append(reasons, "term months must be positive")
	}
	if pp.JEAccountDR != "" && !accountCodeRe.MatchString(pp.JEAccountDR) {
		reasons = append(reasons, fmt.Sprintf("DR account %q is not a 4-6 digit code", pp.JEAccountDR))
	}
	if pp.JEAccountCR != "" && !accountCodeRe.MatchString(pp.JEAccountCR) {
		reasons = append(reasons, fmt.Sprintf("CR account %q is not a 4-6 digit code", pp.JEAccountCR))
	}

	if len(reasons) > 0 {
		p.reject(pp, reasons)
		return
	}
	p.accept(pp)
}
