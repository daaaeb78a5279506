package report

import (
	"cmp"
	"slices"
	"time"

	"github.com/carson-networks/compta-server/internal/model"
)

type ArchiveYear struct {
	Year   int
	Count  int
	Months []ArchiveMonthCount
}

type ArchiveMonthCount struct {
	Month time.Month
	Count int
}

// BuildArchive indexes dated transactions by year and month, newest first.
func BuildArchive(txs []model.Transaction) []ArchiveYear {
	counts := map[int]map[time.Month]int{}
	for _, t := range txs {
		if !t.DateValid {
			continue
		}
		year := t.When.Year()
		if counts[year] == nil {
			counts[year] = map[time.Month]int{}
		}
		counts[year][t.When.Month()]++
	}

	out := make([]ArchiveYear, 0, len(counts))
	for year, months := range counts {
		entry := ArchiveYear{Year: year}
		for month, n := range months {
			entry.Months = append(entry.Months, ArchiveMonthCount{Month: month, Count: n})
			entry.Count += n
		}
		slices.SortFunc(entry.Months, func(a, b ArchiveMonthCount) int { return cmp.Compare(b.Month, a.Month) })
		out = append(out, entry)
	}
	slices.SortFunc(out, func(a, b ArchiveYear) int { return cmp.Compare(b.Year, a.Year) })
	return out
}

// ArchiveMonth returns the transactions of one month, preserving order.
func ArchiveMonth(txs []model.Transaction, year int, month time.Month) []model.Transaction {
	return FilterByDateRange(txs, model.MonthPeriod(year, month))
}
