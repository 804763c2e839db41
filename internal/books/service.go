// Package books orchestrates the close workflow over a document store:
// import CSV text, validate, persist accepted records, apply edits that
// regenerate schedules, and assemble reconciliation reports.
package books

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/assetline-dev/assetline/internal/accounts"
	"github.com/assetline-dev/assetline/internal/export"
	"github.com/assetline-dev/assetline/internal/id"
	"github.com/assetline-dev/assetline/internal/importer"
	"github.com/assetline-dev/assetline/internal/model"
	"github.com/assetline-dev/assetline/internal/reconcile"
	"github.com/assetline-dev/assetline/internal/schedule"
	"github.com/assetline-dev/assetline/internal/store"
	"github.com/assetline-dev/assetline/internal/validate"
)

// Store collections.
const (
	CollectionAssets     = "assets"
	CollectionAccruals   = "accruals"
	CollectionPrepaids   = "prepaids"
	CollectionGLBalances = "gl-balances"
)

// Service provides business logic over the document store.
type Service struct {
	store   store.Store
	parsers *importer.Registry
	codes   accounts.Codes
	epsilon decimal.Decimal
	now     func() time.Time
}

// NewService creates a books Service.
func NewService(st store.Store, parsers *importer.Registry, codes accounts.Codes) *Service {
	return &Service{
		store:   st,
		parsers: parsers,
		codes:   codes,
		now:     time.Now,
	}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithParsers swaps the parser registry, e.g. to stamp imported assets
// with a non-default asset type.
func (s *Service) WithParsers(parsers *importer.Registry) *Service {
	s.parsers = parsers
	return s
}

// WithEpsilon sets the tolerated accrual balance mismatch before imports
// raise a warning. Zero keeps the validation default.
func (s *Service) WithEpsilon(epsilon decimal.Decimal) *Service {
	s.epsilon = epsilon
	return s
}

// ImportSummary reports the outcome of one CSV import. One bad row never
// blocks the rest of the import.
type ImportSummary struct {
	Accepted int
	Rejected []validate.Rejection
	Warnings []string
	Skipped  int
}

// Import parses CSV text for a record kind, validates the records, and
// persists the accepted ones. Only an unknown kind, a missing header
// row, or a store failure is an error.
func (s *Service) Import(kind, csvText string) (ImportSummary, error) {
	parser := s.parsers.Get(kind)
	if parser == nil {
		return ImportSummary{}, fmt.Errorf("unknown record kind %q", kind)
	}

	res, err := parser.Parse(csvText, s.now())
	if err != nil {
		return ImportSummary{}, fmt.Errorf("parsing %s CSV: %w", kind, err)
	}

	part := validate.Records(res.Records, validate.Options{Epsilon: s.epsilon})

	summary := ImportSummary{
		Rejected: part.Invalid,
		Warnings: append(res.Warnings, part.Warnings...),
		Skipped:  res.Skipped,
	}

	for _, rec := range part.Valid {
		if err := s.saveNew(rec); err != nil {
			return summary, err
		}
		summary.Accepted++
	}
	return summary, nil
}

func (s *Service) saveNew(rec model.Record) error {
	recID := id.New()
	collection, err := collectionFor(rec.Kind())
	if err != nil {
		return err
	}

	assignID(rec, recID)
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", rec.Kind(), err)
	}
	if err := s.store.Add(collection, recID, data); err != nil {
		return fmt.Errorf("storing %s: %w", rec.Kind(), err)
	}
	return nil
}

func assignID(rec model.Record, recID string) {
	switch r := rec.(type) {
	case *model.Asset:
		r.ID = recID
	case *model.Accrual:
		r.ID = recID
	case *model.Prepaid:
		r.ID = recID
	}
}

func collectionFor(kind string) (string, error) {
	switch kind {
	case "asset":
		return CollectionAssets, nil
	case "accrual":
		return CollectionAccruals, nil
	case "prepaid":
		return CollectionPrepaids, nil
	}
	return "", fmt.Errorf("unknown record kind %q", kind)
}

// AddAsset validates and persists a manually added asset, regenerating
// its derived fields. Manual adds require a positive cost.
func (s *Service) AddAsset(a *model.Asset) error {
	schedule.RegenerateAsset(a, s.now())
	part := validate.Records([]model.Record{a}, validate.Options{ManualAdd: true})
	if len(part.Invalid) > 0 {
		return fmt.Errorf("invalid asset: %v", part.Invalid[0].Reasons)
	}
	return s.saveNew(a)
}

// Assets returns all stored assets.
func (s *Service) Assets() ([]*model.Asset, error) {
	return listAs[model.Asset](s, CollectionAssets)
}

// Accruals returns all stored accruals.
func (s *Service) Accruals() ([]*model.Accrual, error) {
	return listAs[model.Accrual](s, CollectionAccruals)
}

// Prepaids returns all stored prepaids.
func (s *Service) Prepaids() ([]*model.Prepaid, error) {
	return listAs[model.Prepaid](s, CollectionPrepaids)
}

func listAs[T any](s *Service, collection string) ([]*T, error) {
	docs, err := s.store.List(collection)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}
	out := make([]*T, 0, len(docs))
	for _, doc := range docs {
		var rec T
		if err := json.Unmarshal(doc.Data, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s/%s: %w", collection, doc.ID, err)
		}
		out = append(out, &rec)
	}
	return out, nil
}

// SetAssetLife changes an asset's useful life and regenerates its
// monthly depreciation and schedule.
func (s *Service) SetAssetLife(assetID string, lifeMonths int) error {
	if lifeMonths <= 0 {
		return errors.New("life months must be positive")
	}
	return s.updateAsset(assetID, func(a *model.Asset) {
		a.LifeMonths = lifeMonths
	})
}

// SetAssetDateInPlace changes an asset's depreciation start date and
// regenerates the schedule.
func (s *Service) SetAssetDateInPlace(assetID string, date time.Time) error {
	if date.IsZero() {
		return errors.New("date in place is required")
	}
	return s.updateAsset(assetID, func(a *model.Asset) {
		a.DateInPlace = date
	})
}

func (s *Service) updateAsset(assetID string, mutate func(*model.Asset)) error {
	doc, err := s.store.Get(CollectionAssets, assetID)
	if err != nil {
		return fmt.Errorf("loading asset %s: %w", assetID, err)
	}
	var a model.Asset
	if err := json.Unmarshal(doc.Data, &a); err != nil {
		return fmt.Errorf("decoding asset %s: %w", assetID, err)
	}

	mutate(&a)
	schedule.RegenerateAsset(&a, s.now())

	data, err := json.Marshal(&a)
	if err != nil {
		return fmt.Errorf("marshaling asset %s: %w", assetID, err)
	}
	if err := s.store.Update(CollectionAssets, assetID, data); err != nil {
		return fmt.Errorf("storing asset %s: %w", assetID, err)
	}
	return nil
}

// SetActualAmortization overrides one actual month of a prepaid's
// schedule and recalculates every later remaining balance.
func (s *Service) SetActualAmortization(prepaidID, monthKey string, amount decimal.Decimal) error {
	doc, err := s.store.Get(CollectionPrepaids, prepaidID)
	if err != nil {
		return fmt.Errorf("loading prepaid %s: %w", prepaidID, err)
	}
	var p model.Prepaid
	if err := json.Unmarshal(doc.Data, &p); err != nil {
		return fmt.Errorf("decoding prepaid %s: %w", prepaidID, err)
	}

	entry := p.Schedule[monthKey]
	entry.Amortization = amount
	entry.IsActual = true
	if p.Schedule == nil {
		p.Schedule = make(map[string]model.AmortEntry)
	}
	p.Schedule[monthKey] = entry
	schedule.RecalcPrepaid(&p)

	data, err := json.Marshal(&p)
	if err != nil {
		return fmt.Errorf("marshaling prepaid %s: %w", prepaidID, err)
	}
	if err := s.store.Update(CollectionPrepaids, prepaidID, data); err != nil {
		return fmt.Errorf("storing prepaid %s: %w", prepaidID, err)
	}
	return nil
}

// Delete removes a record from its collection.
func (s *Service) Delete(kind, recID string) error {
	collection, err := collectionFor(kind)
	if err != nil {
		return err
	}
	if err := s.store.Delete(collection, recID); err != nil {
		return fmt.Errorf("deleting %s/%s: %w", collection, recID, err)
	}
	return nil
}

// glDoc is the stored shape of one asset type's GL balances.
type glDoc struct {
	Balances map[string]decimal.Decimal `json:"balances"`
}

// SetGLBalance records an externally reported GL balance for one month
// of an asset type.
func (s *Service) SetGLBalance(assetType model.AssetType, monthKey string, amount decimal.Decimal) error {
	balances, err := s.GLBalances(assetType)
	if err != nil {
		return err
	}

	isNew := balances == nil
	if isNew {
		balances = make(map[string]decimal.Decimal)
	}
	balances[monthKey] = amount

	data, err := json.Marshal(glDoc{Balances: balances})
	if err != nil {
		return fmt.Errorf("marshaling GL balances: %w", err)
	}
	if isNew {
		err = s.store.Add(CollectionGLBalances, string(assetType), data)
	} else {
		err = s.store.Update(CollectionGLBalances, string(assetType), data)
	}
	if err != nil {
		return fmt.Errorf("storing GL balances: %w", err)
	}
	return nil
}

// GLBalances returns the stored GL balances for an asset type, nil when
// none have been recorded.
func (s *Service) GLBalances(assetType model.AssetType) (map[string]decimal.Decimal, error) {
	doc, err := s.store.Get(CollectionGLBalances, string(assetType))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading GL balances: %w", err)
	}
	var d glDoc
	if err := json.Unmarshal(doc.Data, &d); err != nil {
		return nil, fmt.Errorf("decoding GL balances: %w", err)
	}
	return d.Balances, nil
}

// AssetReport assembles a depreciation reconciliation report for one
// asset type over the given months, including the month's journal
// entries for the last key.
func (s *Service) AssetReport(assetType model.AssetType, monthKeys []string) (export.Report, error) {
	assets, err := s.Assets()
	if err != nil {
		return export.Report{}, err
	}

	var typed []*model.Asset
	rows := make([]export.Row, 0, len(assets))
	for _, a := range assets {
		if a.AssetType != assetType {
			continue
		}
		typed = append(typed, a)
		rows = append(rows, export.Row{Name: a.Name, Record: a})
	}

	gl, err := s.GLBalances(assetType)
	if err != nil {
		return export.Report{}, err
	}

	var journal []model.JournalLine
	if len(monthKeys) > 0 {
		journal = reconcile.AssetJournalEntries(typed, monthKeys[len(monthKeys)-1], s.codes)
	}

	return export.Report{
		Label:      "Name",
		MonthKeys:  monthKeys,
		Rows:       rows,
		GLBalances: gl,
		Journal:    journal,
	}, nil
}

// JournalEntries assembles the full set of balanced journal entries for
// one close month: depreciation per asset type, the accrual pool, and
// the prepaid amortization pool.
func (s *Service) JournalEntries(monthKey string) ([]model.JournalLine, error) {
	assets, err := s.Assets()
	if err != nil {
		return nil, err
	}
	accruals, err := s.Accruals()
	if err != nil {
		return nil, err
	}
	prepaids, err := s.Prepaids()
	if err != nil {
		return nil, err
	}

	lines := reconcile.AssetJournalEntries(assets, monthKey, s.codes)
	lines = append(lines, reconcile.AccrualJournalEntries(accruals, monthKey, s.codes)...)
	lines = append(lines, reconcile.PrepaidJournalEntries(prepaids, monthKey, s.codes)...)
	return lines, nil
}

// AccrualReport assembles an accrual report over the given months.
// Inactive accruals are excluded.
func (s *Service) AccrualReport(monthKeys []string) (export.Report, error) {
	accruals, err := s.Accruals()
	if err != nil {
		return export.Report{}, err
	}

	var active []*model.Accrual
	rows := make([]export.Row, 0, len(accruals))
	for _, a := range accruals {
		if !a.Active() {
			continue
		}
		active = append(active, a)
		rows = append(rows, export.Row{Name: a.Vendor, Record: a})
	}

	var journal []model.JournalLine
	if len(monthKeys) > 0 {
		journal = reconcile.AccrualJournalEntries(active, monthKeys[len(monthKeys)-1], s.codes)
	}

	return export.Report{
		Label:     "Vendor",
		MonthKeys: monthKeys,
		Rows:      rows,
		Journal:   journal,
	}, nil
}
