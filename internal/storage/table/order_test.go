package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(rows []*Transaction) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.ID
	}
	return out
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := []*Transaction{
		{ID: "legacy-1"},
		{ID: "a", CreatedAt: base},
		{ID: "legacy-2"},
		{ID: "c", CreatedAt: base.Add(time.Hour)},
		{ID: "b", CreatedAt: base},
	}

	SortNewestFirst(rows)

	assert.Equal(t, []string{"c", "b", "a", "legacy-1", "legacy-2"}, ids(rows))
}

func TestPage(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]*Transaction, 5)
	for i := range rows {
		rows[i] = &Transaction{ID: string(rune('e' - i)), CreatedAt: base.Add(-time.Duration(i) * time.Hour)}
	}

	assert.Len(t, Page(rows, nil), 5)
	assert.Equal(t, []string{"e", "d", "c"}, ids(Page(rows, &TransactionFilter{Limit: 2})))
	assert.Equal(t, []string{"c", "b"}, ids(Page(rows, &TransactionFilter{Limit: 2, Offset: 2})[:2]))
	assert.Empty(t, Page(rows, &TransactionFilter{Offset: 9}))

	maxTime := base.Add(-2 * time.Hour)
	page := Page(rows, &TransactionFilter{MaxCreationTime: &maxTime})
	require.Len(t, page, 3)
	assert.Equal(t, "c", page[0].ID)
}

func TestSettingsWithDefaults(t *testing.T) {
	var missing *Settings
	assert.Equal(t, DefaultSettings(), missing.WithDefaults())

	partial := &Settings{Accounts: Accounts{Saving: []string{"PEL"}}, Locale: "fr"}
	merged := partial.WithDefaults()
	assert.Equal(t, []string{defaultCurrentAccount}, merged.Accounts.Current)
	assert.Equal(t, []string{"PEL"}, merged.Accounts.Saving)
	assert.NotNil(t, merged.Accounts.SavingLinks)
	assert.Equal(t, "fr", merged.Locale)
}
