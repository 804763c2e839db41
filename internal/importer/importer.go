// Package importer maps tokenized spreadsheet exports onto domain
// records. Each record kind has a parser; parsers share the Row accessor
// type and a registry, and report per-row problems through a Result
// rather than failing the import.
package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/assetline-dev/assetline/internal/model"
	"github.com/assetline-dev/assetline/internal/parse"
)

// Row is one tokenized CSV row keyed by header. Missing trailing cells
// read as empty strings; accessors apply the tolerant parsers.
type Row map[string]string

// NewRow zips headers with cells. Extra cells are dropped, missing
// trailing cells default to empty.
func NewRow(headers, cells []string) Row {
	row := make(Row, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if i < len(cells) {
			row[h] = cells[i]
		} else {
			row[h] = ""
		}
	}
	return row
}

// Get returns the trimmed raw value for a header.
func (r Row) Get(header string) string {
	return strings.TrimSpace(r[header])
}

// Amount returns the header's value parsed as a monetary amount.
func (r Row) Amount(header string) decimal.Decimal {
	return parse.Amount(r[header])
}

// Int returns the header's value parsed as an integer, zero if absent or
// malformed.
func (r Row) Int(header string) int {
	return int(parse.Amount(r[header]).IntPart())
}

// Date returns the header's value as a date. ok is false when the value
// was missing or unparseable and the fallback was used.
func (r Row) Date(header string, now time.Time) (time.Time, bool) {
	return parse.FlexibleDate(r[header], now)
}

// Result is the outcome of parsing one CSV document. Rows without an
// identity value are counted in Skipped; degraded parses surface in
// Warnings. Nothing short of a missing header row fails the import.
type Result struct {
	Records  []model.Record
	Skipped  int
	Warnings []string
}

func (res *Result) warnf(format string, args ...any) {
	res.Warnings = append(res.Warnings, fmt.Sprintf(format, args...))
}

// Parser converts raw CSV text into domain records.
type Parser interface {
	Parse(text string, now time.Time) (Result, error)
	Kind() string
}

// Registry holds parsers by record kind.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate kind.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Kind())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser kind: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for kind, or nil.
func (r *Registry) Get(kind string) Parser {
	return r.parsers[strings.ToLower(kind)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&AssetParser{})
	r.Register(&AccrualParser{})
	r.Register(&PrepaidParser{})
	return r
}
