package model

import "github.com/shopspring/decimal"

// JournalLine is one side of a double-entry posting produced for a close
// period. A generated entry is always a debit line paired with a credit
// line of equal amount.
type JournalLine struct {
	Account    string
	Debit      decimal.Decimal // zero if credit side
	Credit     decimal.Decimal // zero if debit side
	Memo       string
	Entity     string
	Department string
	Class      string
	Location   string
}
