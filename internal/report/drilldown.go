package report

import (
	"slices"
	"strings"

	"github.com/carson-networks/compta-server/internal/model"
)

// DrilldownFilter narrows the transaction table under the dashboard charts.
// Zero values disable a criterion.
type DrilldownFilter struct {
	Search          string
	Type            model.Type
	Category        string
	PrelevementOnly bool
	SavingOnly      bool
}

func (f DrilldownFilter) match(t model.Transaction, search string) bool {
	if search != "" && !strings.Contains(strings.ToLower(t.Name), search) {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.PrelevementOnly && !t.IsPrelevement {
		return false
	}
	if f.SavingOnly && t.Category != model.CategorySaving {
		return false
	}
	return true
}

func FilterDrilldown(txs []model.Transaction, f DrilldownFilter) []model.Transaction {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]model.Transaction, 0, len(txs))
	for _, t := range txs {
		if f.match(t, search) {
			out = append(out, t)
		}
	}
	return out
}

// DrilldownCategories lists the distinct non-empty categories, sorted.
func DrilldownCategories(txs []model.Transaction) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, t := range txs {
		if t.Category == "" {
			continue
		}
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	slices.Sort(out)
	return out
}
