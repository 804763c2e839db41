package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/assetline-dev/assetline/internal/csvtext"
	"github.com/assetline-dev/assetline/internal/model"
	"github.com/assetline-dev/assetline/internal/parse"
)

// Recognized accrual export headers.
const (
	hdrVendor      = "Vendor"
	hdrDescription = "Description"
	hdrAccountDR   = "Accrual JE Account (DR)"
	hdrAccountCR   = "Accrual JE Account (CR)"
	hdrBalance     = "Balance"
)

// AccrualParser maps an accrued-expense export to Accrual records.
type AccrualParser struct{}

// Kind returns the parser name.
func (p *AccrualParser) Kind() string { return "accrual" }

// Parse reads an accrual CSV export. Date-pattern columns carry the
// monthly amounts: negative values accumulate into the month's reversal,
// positive values into its accrual, so paired and singleton month
// columns both work. Rows with an empty vendor are dropped and tallied.
func (p *AccrualParser) Parse(text string, now time.Time) (Result, error) {
	doc, ok := csvtext.Tokenize(text, hdrVendor)
	if !ok {
		return Result{}, fmt.Errorf("no header row found (expected a %q column)", hdrVendor)
	}

	var res Result
	for _, cells := range doc.Rows {
		row := NewRow(doc.Header, cells)

		vendor := row.Get(hdrVendor)
		if vendor == "" {
			res.Skipped++
			continue
		}

		acc := &model.Accrual{
			Vendor:         vendor,
			Description:    row.Get(hdrDescription),
			JEAccountDR:    row.Get(hdrAccountDR),
			JEAccountCR:    row.Get(hdrAccountCR),
			Balance:        row.Amount(hdrBalance),
			IsActive:       true,
			MonthlyEntries: monthlyColumns(doc.Header, cells),
		}
		res.Records = append(res.Records, acc)
	}
	return res, nil
}

// monthlyColumns folds date-pattern columns into per-month
// reversal/accrual pairs. It walks columns positionally because paired
// reversal/accrual columns may repeat the same header date.
func monthlyColumns(headers, cells []string) map[string]model.MonthlyEntry {
	entries := make(map[string]model.MonthlyEntry)
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if !parse.IsDateHeader(h) {
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

		key := parse.MonthKey(headerDate)
		entry := entries[key]
		if amount.IsNegative() {
			entry.Reversal = entry.Reversal.Add(amount)
		} else {
			entry.Accrual = entry.Accrual.Add(amount)
		}
		entries[key] = entry
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}
