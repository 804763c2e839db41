// Package accounts holds the journal-entry account codes used when
// generating close entries, plus a small lookup book over the known
// codes.
package accounts

import (
	"regexp"

	"github.com/assetline-dev/assetline/internal/model"
)

var codeRe = regexp.MustCompile(`^\d{4,6}$`)

// ValidCode reports whether s is a 4-6 digit account code.
func ValidCode(s string) bool {
	return codeRe.MatchString(s)
}

// Codes selects the accounts that close journal entries post to. The
// accumulated-depreciation credit account depends on the asset type.
type Codes struct {
	DepreciationExpense string `yaml:"depreciation_expense"`
	AccumDepComputer    string `yaml:"accum_dep_computer_equipment"`
	AccumDepFurniture   string `yaml:"accum_dep_furniture"`
	AccrualExpense      string `yaml:"accrual_expense"`
	AccruedLiability    string `yaml:"accrued_liability"`
	PrepaidExpense      string `yaml:"prepaid_expense"`
	PrepaidAsset        string `yaml:"prepaid_asset"`
}

// AccumDepFor returns the accumulated-depreciation account for an asset
// type.
func (c Codes) AccumDepFor(t model.AssetType) string {
	if t == model.AssetTypeFurniture {
		return c.AccumDepFurniture
	}
	return c.AccumDepComputer
}

// Account is one entry in the account book.
type Account struct {
	Code string
	Name string
}

// Book provides lookup over known accounts.
type Book struct {
	accounts []Account
	byCode   map[string]Account
}

// NewBook creates a Book from a slice of accounts.
func NewBook(accounts []Account) *Book {
	byCode := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return &Book{accounts: accounts, byCode: byCode}
}

// All returns all accounts.
func (b *Book) All() []Account {
	return b.accounts
}

// Get returns an account by code.
func (b *Book) Get(code string) (Account, bool) {
	a, ok := b.byCode[code]
	return a, ok
}

// Exists reports whether a code is in the book.
func (b *Book) Exists(code string) bool {
	_, ok := b.byCode[code]
	return ok
}

// DefaultCodes returns the default close-entry account codes.
func DefaultCodes() Codes {
	return Codes{
		DepreciationExpense: "6800",
		AccumDepComputer:    "1610",
		AccumDepFurniture:   "1620",
		AccrualExpense:      "6100",
		AccruedLiability:    "2150",
		PrepaidExpense:      "6300",
		PrepaidAsset:        "1410",
	}
}

// DefaultBook returns a book covering the default codes.
func DefaultBook() *Book {
	return NewBook([]Account{
		{Code: "1410", Name: "Prepaid Expenses"},
		{Code: "1510", Name: "Computer Equipment"},
		{Code: "1520", Name: "Furniture & Fixtures"},
		{Code: "1610", Name: "Accum Dep - Computer Equipment"},
		{Code: "1620", Name: "Accum Dep - Furniture"},
		{Code: "2150", Name: "Accrued Liabilities"},
		{Code: "6100", Name: "Accrued Expenses"},
		{Code: "6300", Name: "Prepaid Expense Amortization"},
		{Code: "6800", Name: "Depreciation Expense"},
	})
}
