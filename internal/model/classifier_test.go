package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tx(typ Type, category string) Transaction {
	return Transaction{
		Date:           "2025-03-14",
		Amount:         decimal.RequireFromString("10.00"),
		Type:           typ,
		Category:       category,
		CurrentAccount: "Main",
	}
}

// -- Classify tests --

func TestClassify_SavingWithAccount(t *testing.T) {
	kind := Classify(CategorySaving, "Livret A", "")

	assert.Equal(t, SavingTransfer, kind.Movement)
	account, ok := kind.SavingAccount()
	assert.True(t, ok)
	assert.Equal(t, "Livret A", account)
	_, ok = kind.TransferAccount()
	assert.False(t, ok)
}

func TestClassify_TransferAliases(t *testing.T) {
	for _, category := range []string{CategoryTransfer, CategoryAccountTransfer} {
		kind := Classify(category, "", "Joint")
		assert.Equal(t, CurrentTransfer, kind.Movement, category)
		account, ok := kind.TransferAccount()
		assert.True(t, ok)
		assert.Equal(t, "Joint", account)
	}
}

func TestClassify_MissingSubFieldIsOrdinary(t *testing.T) {
	assert.Equal(t, Ordinary, Classify(CategorySaving, "", "Joint").Movement)
	assert.Equal(t, Ordinary, Classify(CategoryTransfer, "Livret A", "").Movement)
	assert.Equal(t, Ordinary, Classify("Groceries", "Livret A", "Joint").Movement)
}

// -- Partition tests --

func TestPredicates_PartitionIsComplete(t *testing.T) {
	cases := []Transaction{
		tx(TypeIncome, "Salary"),
		tx(TypeExpense, "Rent"),
		tx(TypeExpense, ""),
		func() Transaction { r := tx(TypeExpense, CategorySaving); r.SavingAccount = "Livret A"; return r }(),
		func() Transaction { r := tx(TypeIncome, CategorySaving); r.SavingAccount = "Livret A"; return r }(),
		func() Transaction { r := tx(TypeExpense, CategoryTransfer); r.TransferAccount = "Joint"; return r }(),
		func() Transaction { r := tx(TypeIncome, CategoryAccountTransfer); r.TransferAccount = "Joint"; return r }(),
		tx(TypeExpense, CategorySaving),
		tx(TypeIncome, CategoryTransfer),
	}

	for _, raw := range cases {
		record := Ingest(raw)
		hits := 0
		for _, predicate := range []func(Transaction) bool{IsRealIncome, IsRealOutcome, IsSavingTransfer, IsCurrentTransfer} {
			if predicate(record) {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "category %q type %q", raw.Category, raw.Type)
	}
}

func TestPredicates_MalformedSavingFallsBackToOrdinary(t *testing.T) {
	record := Ingest(tx(TypeExpense, CategorySaving))

	assert.False(t, IsSavingTransfer(record))
	assert.True(t, IsRealOutcome(record))
}

// -- Ingest tests --

func TestIngest_DerivesFields(t *testing.T) {
	raw := tx(TypeExpense, CategorySaving)
	raw.SavingAccount = "Livret A"
	raw.Amount = decimal.RequireFromString("-42.10")
	raw.Date = "2024-11-05T09:30:00.000Z"

	record := Ingest(raw)

	assert.True(t, record.Amount.Equal(decimal.RequireFromString("42.10")))
	assert.True(t, record.DateValid)
	assert.Equal(t, 2024, record.Year())
	assert.Equal(t, time.November, record.When.Month())
	assert.Equal(t, AccountKindSaving, record.AccountType())
	assert.Equal(t, "Livret A", record.AccountName())
}

func TestIngest_InvalidDate(t *testing.T) {
	raw := tx(TypeIncome, "Salary")
	raw.Date = "31/12/2024"

	record := Ingest(raw)

	assert.False(t, record.DateValid)
	assert.Equal(t, 0, record.Year())
	assert.Equal(t, AccountKindCurrent, record.AccountType())
	assert.Equal(t, "Main", record.AccountName())
}

func TestParseDate_Layouts(t *testing.T) {
	for _, raw := range []string{
		"2025-01-31",
		"2025-01-31T23:59",
		"2025-01-31T23:59:59",
		"2025-01-31T23:59:59.123",
		"2025-01-31T23:59:59Z",
		"2025-01-31T23:59:59.123456+02:00",
	} {
		parsed, ok := ParseDate(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, 31, parsed.Day(), raw)
		assert.Equal(t, time.January, parsed.Month(), raw)
	}

	_, ok := ParseDate("")
	assert.False(t, ok)
	_, ok = ParseDate("not-a-date")
	assert.False(t, ok)
}
