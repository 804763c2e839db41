// Package export serializes reconciliation reports and journal entries
// as CSV text. Layout: header, one row per record with a trailing total,
// summary rows (monthly total, GL balance, variance), then a separate
// JOURNAL ENTRIES section with its own header. All amounts render with
// exactly two decimal places.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/assetline-dev/assetline/internal/model"
	"github.com/assetline-dev/assetline/internal/reconcile"
)

// JournalHeader is the header of the journal-entries section.
const JournalHeader = "Account,Debit,Credit,Line Memo,Entity,Department,Class,Location"

const journalNumFields = 8

// Row is one record in a report: a display name plus its schedule.
type Row struct {
	Name   string
	Record model.Scheduler
}

// Report is everything needed to render one export.
type Report struct {
	Label      string // first column header, e.g. "Name" or "Vendor"
	MonthKeys  []string
	Rows       []Row
	GLBalances map[string]decimal.Decimal
	Journal    []model.JournalLine
}

// WriteReport renders a full report to w.
func WriteReport(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(rep.MonthKeys)+2)
	header = append(header, rep.Label)
	header = append(header, rep.MonthKeys...)
	header = append(header, "Total")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	records := make([]model.Record, 0, len(rep.Rows))
	for i, row := range rep.Rows {
		cells := make([]string, 0, len(header))
		cells = append(cells, row.Name)
		total := decimal.Zero
		for _, key := range rep.MonthKeys {
			v := row.Record.ScheduleFor(key)
			total = total.Add(v)
			cells = append(cells, v.StringFixed(2))
		}
		cells = append(cells, total.StringFixed(2))
		if err := cw.Write(cells); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
		if rec, ok := row.Record.(model.Record); ok {
			records = append(records, rec)
		}
	}

	if err := writeSummaryRows(cw, rep, records); err != nil {
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nJOURNAL ENTRIES\n"); err != nil {
		return fmt.Errorf("writing journal section: %w", err)
	}
	return WriteJournal(w, rep.Journal)
}

func writeSummaryRows(cw *csv.Writer, rep Report, records []model.Record) error {
	totalRow := []string{"Monthly Total"}
	glRow := []string{"GL Balance"}
	varianceRow := []string{"Variance"}

	grandTotal := decimal.Zero
	grandGL := decimal.Zero
	aggregateVariance := decimal.Zero
	for _, key := range rep.MonthKeys {
		total := reconcile.MonthlyTotal(records, key)
		gl := rep.GLBalances[key]
		v := reconcile.Variance(gl, total)

		totalRow = append(totalRow, total.StringFixed(2))
		glRow = append(glRow, gl.StringFixed(2))
		varianceRow = append(varianceRow, v.StringFixed(2))

		grandTotal = grandTotal.Add(total)
		grandGL = grandGL.Add(gl)
		aggregateVariance = aggregateVariance.Add(v)
	}
	totalRow = append(totalRow, grandTotal.StringFixed(2))
	glRow = append(glRow, grandGL.StringFixed(2))
	varianceRow = append(varianceRow, aggregateVariance.StringFixed(2))

	for _, row := range [][]string{totalRow, glRow, varianceRow} {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}
	return nil
}

// WriteJournal writes journal entries as CSV (header + rows).
func WriteJournal(w io.Writer, lines []model.JournalLine) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(JournalHeader, ",")); err != nil {
		return fmt.Errorf("writing journal header: %w", err)
	}
	for i, line := range lines {
		if err := cw.Write(MarshalJournalLine(line)); err != nil {
			return fmt.Errorf("writing journal row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalJournalLine converts a JournalLine to a CSV row. The zero side
// of the entry is left blank.
func MarshalJournalLine(line model.JournalLine) []string {
	row := make([]string, journalNumFields)
	row[0] = line.Account
	if !line.Debit.IsZero() {
		row[1] = line.Debit.StringFixed(2)
	}
	if !line.Credit.IsZero() {
		row[2] = line.Credit.StringFixed(2)
	}
	row[3] = line.Memo
	row[4] = line.Entity
	row[5] = line.Department
	row[6] = line.Class
	row[7] = line.Location
	return row
}
