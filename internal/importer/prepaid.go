package importer

import (
	"fmt"
	"time"

	"github.com/assetline-dev/assetline/internal/csvtext"
	"github.com/assetline-dev/assetline/internal/model"
	"github.com/assetline-dev/assetline/internal/schedule"
)

// Recognized prepaid export headers.
const (
	hdrInitialAmount = "Initial Amount"
	hdrStartDate     = "Start Date"
	hdrEndDate       = "End Date"
	hdrTermMonths    = "Term (Months)"
)

// PrepaidParser maps a prepaid-expense export to Prepaid records.
type PrepaidParser struct{}

// Kind returns the parser name.
func (p *PrepaidParser) Kind() string { return "prepaid" }

// Parse reads a prepaid CSV export. A missing term is derived from the
// start/end dates; records without per-month columns get a generated
// straight-line schedule. Rows with an empty vendor are dropped.
func (p *PrepaidParser) Parse(text string, now time.Time) (Result, error) {
	doc, ok := csvtext.Tokenize(text, hdrVendor)
	if !ok {
		return Result{}, fmt.Errorf("no header row found (expected a %q column)", hdrVendor)
	}

	var res Result
	for i, cells := range doc.Rows {
		row := NewRow(doc.Header, cells)

		vendor := row.Get(hdrVendor)
		if vendor == "" {
			res.Skipped++
			continue
		}

		start, startOK := row.Date(hdrStartDate, now)
		if !startOK {
			res.warnf("row %d (%s): unparseable start date, defaulted to current date", i+2, vendor)
		}
		end, endOK := row.Date(hdrEndDate, now)

		term := row.Int(hdrTermMonths)
		if term <= 0 && endOK {
			term = schedule.MonthsElapsed(start, end) + 1
		}

		pp := &model.Prepaid{
			Vendor:        vendor,
			Description:   row.Get(hdrDescription),
			JEAccountDR:   row.Get(hdrAccountDR),
			JEAccountCR:   row.Get(hdrAccountCR),
			IsActive:      true,
			InitialAmount: row.Amount(hdrInitialAmount),
			StartDate:     start,
			EndDate:       end,
			TermMonths:    term,
		}

		if term > 0 {
			schedule.GeneratePrepaid(pp)
		}
		res.Records = append(res.Records, pp)
	}
	return res, nil
}
