package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/assetline-dev/assetline/internal/csvtext"
	"github.com/assetline-dev/assetline/internal/model"
	"github.com/assetline-dev/assetline/internal/parse"
	"github.com/assetline-dev/assetline/internal/schedule"
)

// Recognized asset export headers.
const (
	hdrMemo        = "Memo/Description"
	hdrPayee       = "Payee (Name)"
	hdrAccount     = "Account"
	hdrDepartment  = "Class/Department"
	hdrCost        = "Cost"
	hdrLifeMonths  = "# of life (months)"
	hdrMonthlyDep  = "Monthly Dep"
	hdrAccumDep    = "Accumulated Depreciation"
	hdrNBV         = "NBV (YTD)"
	hdrDate        = "Date"
	hdrDateInPlace = "Date in place (Mid-month convention)"
)

// AssetParser maps a fixed-asset spreadsheet export to Asset records.
type AssetParser struct {
	// AssetType is stamped on every parsed record. Defaults to
	// computer-equipment.
	AssetType model.AssetType
	// Namer overrides the display-name synthesis strategy.
	Namer Namer
}

// Kind returns the parser name.
func (p *AssetParser) Kind() string { return "asset" }

// Parse reads an asset CSV export. The header row is located by scanning
// for the memo/description column, so leading report metadata is skipped.
// Rows with an empty description are dropped and tallied.
func (p *AssetParser) Parse(text string, now time.Time) (Result, error) {
	doc, ok := csvtext.Tokenize(text, hdrMemo, hdrCost)
	if !ok {
		return Result{}, fmt.Errorf("no header row found (expected a %q column)", hdrMemo)
	}

	assetType := p.AssetType
	if assetType == "" {
		assetType = model.AssetTypeComputerEquipment
	}
	namer := p.Namer
	if namer == nil {
		namer = DefaultNamer
	}

	var res Result
	for i, cells := range doc.Rows {
		row := NewRow(doc.Header, cells)

		desc := row.Get(hdrMemo)
		if desc == "" {
			res.Skipped++
			continue
		}

		dateInPlace, dateOK := p.dateInPlace(row, now)
		if !dateOK {
			res.warnf("row %d (%s): unparseable date in place, defaulted to current date", i+2, desc)
		}

		cost := row.Amount(hdrCost)
		life := row.Int(hdrLifeMonths)

		monthlyDep := row.Amount(hdrMonthlyDep)
		if monthlyDep.IsZero() {
			monthlyDep = schedule.MonthlyAmount(cost, life)
		}

		accumDep := row.Amount(hdrAccumDep)
		nbv := row.Amount(hdrNBV)
		if accumDep.IsZero() && nbv.IsZero() {
			accumDep, nbv = schedule.AccumulatedToDate(cost, monthlyDep, dateInPlace, now)
		} else if nbv.IsZero() {
			nbv = cost.Sub(accumDep)
		}

		asset := &model.Asset{
			Name:        namer(desc, row.Get(hdrPayee)),
			DateInPlace: dateInPlace,
			Account:     row.Get(hdrAccount),
			Department:  row.Get(hdrDepartment),
			Cost:        cost,
			LifeMonths:  life,
			MonthlyDep:  monthlyDep,
			AccumDep:    accumDep,
			NBV:         nbv,
			AssetType:   assetType,
			DepSchedule: p.scheduleColumns(doc.Header, cells),
		}

		if len(asset.DepSchedule) == 0 && life > 0 {
			asset.DepSchedule = schedule.StraightLine(cost, dateInPlace, life)
		}

		res.Records = append(res.Records, asset)
	}
	return res, nil
}

// dateInPlace prefers the mid-month convention column, falling back to
// the plain date column.
func (p *AssetParser) dateInPlace(row Row, now time.Time) (time.Time, bool) {
	if row.Get(hdrDateInPlace) != "" {
		return row.Date(hdrDateInPlace, now)
	}
	return row.Date(hdrDate, now)
}

// scheduleColumns extracts per-month depreciation from date-pattern
// headers, walking columns positionally. The date-in-place columns are
// not schedule columns; zero amounts are omitted.
func (p *AssetParser) scheduleColumns(headers, cells []string) map[string]decimal.Decimal {
	sched := make(map[string]decimal.Decimal)
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == hdrDateInPlace || h == hdrDate || !parse.IsDateHeader(h) {
			continue
		}
		headerDate, ok := parse.FlexibleDate(h, time.Time{})
		if !ok {
			continue
		}
		var raw string
		if i < len(cells) {
			raw = cells[i]
		}
		amount := parse.Amount(raw)
		if amount.IsZero() {
			continue
		}
		sched[parse.MonthKey(headerDate)] = sched[parse.MonthKey(headerDate)].Add(amount)
	}
	if len(sched) == 0 {
		return nil
	}
	return sched
}
