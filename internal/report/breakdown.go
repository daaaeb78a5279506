package report

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/compta-server/internal/model"
)

// CategoryTotal is the real outcome of one category. Share is the
// percentage of the breakdown total, rounded to two decimals.
type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
	Count int
	Share decimal.Decimal
}

// ComputeCategoryBreakdown groups real outcome by category, largest first.
func ComputeCategoryBreakdown(txs []model.Transaction) []CategoryTotal {
	return groupTotals(txs, model.IsRealOutcome, func(t model.Transaction) string {
		if t.Category == "" {
			return model.CategoryOther
		}
		return t.Category
	})
}

// ComputePrelevementBreakdown groups recurring debits by their label.
func ComputePrelevementBreakdown(txs []model.Transaction) []CategoryTotal {
	return groupTotals(txs, func(t model.Transaction) bool {
		return t.IsPrelevement && model.IsRealOutcome(t)
	}, func(t model.Transaction) string {
		if t.Name == "" {
			return unknownName
		}
		return t.Name
	})
}

func groupTotals(txs []model.Transaction, keep func(model.Transaction) bool, key func(model.Transaction) string) []CategoryTotal {
	index := map[string]int{}
	var out []CategoryTotal
	grand := decimal.Zero

	for _, t := range txs {
		if !keep(t) {
			continue
		}
		name := key(t)
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, CategoryTotal{Name: name})
		}
		out[i].Total = out[i].Total.Add(t.Amount)
		out[i].Count++
		grand = grand.Add(t.Amount)
	}

	for i := range out {
		if grand.IsPositive() {
			out[i].Share = out[i].Total.Div(grand).Mul(hundred).Round(2)
		}
	}

	slices.SortStableFunc(out, func(a, b CategoryTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
