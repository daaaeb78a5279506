package table

import (
	"cmp"
	"slices"
)

// SortNewestFirst orders rows by creation time descending, then id
// descending. Rows without a creation time go last, in their input order.
func SortNewestFirst(rows []*Transaction) {
	slices.SortStableFunc(rows, func(a, b *Transaction) int {
		aZero, bZero := a.CreatedAt.IsZero(), b.CreatedAt.IsZero()
		switch {
		case aZero && bZero:
			return 0
		case aZero:
			return 1
		case bZero:
			return -1
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

// Page applies a filter to rows already sorted by SortNewestFirst. Like the
// SQL backend it fetches one row past Limit so callers can detect a next page.
func Page(rows []*Transaction, filter *TransactionFilter) []*Transaction {
	if filter == nil {
		return rows
	}
	out := rows
	if filter.MaxCreationTime != nil {
		kept := make([]*Transaction, 0, len(rows))
		for _, row := range rows {
			if !row.CreatedAt.After(*filter.MaxCreationTime) {
				kept = append(kept, row)
			}
		}
		out = kept
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []*Transaction{}
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit+1 {
		out = out[:filter.Limit+1]
	}
	return out
}
