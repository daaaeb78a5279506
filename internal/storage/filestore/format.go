package filestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/compta-server/internal/storage/table"
)

const (
	settingsFileName = "settings.json"
	undatedMonthKey  = "00"
)

var yearFilePattern = regexp.MustCompile(`(?i)^Compta_(\d{4})\.json$`)

func yearFileName(year int) string {
	return fmt.Sprintf("Compta_%d.json", year)
}

// record is the on-disk shape of a transaction, shared with the desktop
// application. accountType and accountName are derived and only written
// for compatibility.
type record struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	IsPrelevement   bool            `json:"isPrelevement"`
	CurrentAccount  string          `json:"currentAccount,omitempty"`
	SavingAccount   string          `json:"savingAccount,omitempty"`
	TransferAccount string          `json:"transferAccount,omitempty"`
	AccountType     string          `json:"accountType,omitempty"`
	AccountName     string          `json:"accountName,omitempty"`
	CreatedAt       string          `json:"createdAt,omitempty"`
}

type yearFile struct {
	Year   int                 `json:"year"`
	Months map[string][]record `json:"months"`
}

func toRecord(row *table.Transaction) record {
	rec := record{
		ID:              row.ID,
		Date:            row.Date,
		Name:            row.Name,
		Amount:          row.Amount,
		Type:            row.Type,
		Category:        row.Category,
		IsPrelevement:   row.IsPrelevement,
		CurrentAccount:  row.CurrentAccount,
		SavingAccount:   row.SavingAccount,
		TransferAccount: row.TransferAccount,
		AccountType:     "current",
		AccountName:     row.CurrentAccount,
	}
	if row.Category == "Saving" {
		rec.AccountType = "saving"
		rec.AccountName = row.SavingAccount
	}
	if !row.CreatedAt.IsZero() {
		rec.CreatedAt = row.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return rec
}

func fromRecord(rec record) *table.Transaction {
	row := &table.Transaction{
		ID:              rec.ID,
		Date:            rec.Date,
		Name:            rec.Name,
		Amount:          rec.Amount.Abs(),
		Type:            rec.Type,
		Category:        rec.Category,
		IsPrelevement:   rec.IsPrelevement,
		CurrentAccount:  rec.CurrentAccount,
		SavingAccount:   rec.SavingAccount,
		TransferAccount: rec.TransferAccount,
	}
	if rec.CreatedAt != "" {
		if created, err := time.Parse(time.RFC3339Nano, rec.CreatedAt); err == nil {
			row.CreatedAt = created
		}
	}
	return row
}

// decodeYearFile accepts both the {year, months} document and a bare array.
func decodeYearFile(raw []byte) ([]record, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var records []record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var doc yearFile
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	var records []record
	for _, month := range sortedKeys(doc.Months) {
		records = append(records, doc.Months[month]...)
	}
	return records, nil
}

func monthKey(month time.Month) string {
	return fmt.Sprintf("%02d", int(month))
}

func parseYear(name string) (int, bool) {
	match := yearFilePattern.FindStringSubmatch(name)
	if match == nil {
		return 0, false
	}
	year, err := strconv.Atoi(match[1])
	return year, err == nil
}
