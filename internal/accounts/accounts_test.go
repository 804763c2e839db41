package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assetline-dev/assetline/internal/model"
)

func TestValidCode(t *testing.T) {
	assert.True(t, ValidCode("6800"))
	assert.True(t, ValidCode("123456"))
	assert.False(t, ValidCode("680"))
	assert.False(t, ValidCode("1234567"))
	assert.False(t, ValidCode("68a0"))
	assert.False(t, ValidCode(""))
}

func TestAccumDepFor(t *testing.T) {
	codes := DefaultCodes()
	assert.Equal(t, "1610", codes.AccumDepFor(model.AssetTypeComputerEquipment))
	assert.Equal(t, "1620", codes.AccumDepFor(model.AssetTypeFurniture))
}

func TestBookLookup(t *testing.T) {
	book := DefaultBook()

	a, ok := book.Get("6800")
	assert.True(t, ok)
	assert.Equal(t, "Depreciation Expense", a.Name)

	assert.True(t, book.Exists("2150"))
	assert.False(t, book.Exists("9999"))
	assert.Len(t, book.All(), 9)
}

func TestDefaultCodesAreValid(t *testing.T) {
	codes := DefaultCodes()
	for _, code := range []string{
		codes.DepreciationExpense,
		codes.AccumDepComputer,
		codes.AccumDepFurniture,
		codes.AccrualExpense,
		codes.AccruedLiability,
		codes.PrepaidExpense,
		codes.PrepaidAsset,
	} {
		assert.True(t, ValidCode(code), "code %s", code)
	}
}
