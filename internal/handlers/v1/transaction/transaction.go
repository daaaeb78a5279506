package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/compta-server/internal/model"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	Date            string `json:"date" doc:"ISO-8601 date as recorded"`
	Name            string `json:"name" doc:"Label"`
	Amount          string `json:"amount" doc:"Decimal magnitude"`
	Type            string `json:"type" enum:"income,expense" doc:"Direction relative to the account"`
	Category        string `json:"category" doc:"Category"`
	IsPrelevement   bool   `json:"isPrelevement" doc:"Recurring direct debit"`
	CurrentAccount  string `json:"currentAccount" doc:"Current account the movement is recorded on"`
	SavingAccount   string `json:"savingAccount,omitempty" doc:"Saving account of a saving transfer"`
	TransferAccount string `json:"transferAccount,omitempty" doc:"Receiving current account of a transfer"`
	AccountType     string `json:"accountType" doc:"saving for saving transfers, current otherwise"`
	AccountName     string `json:"accountName" doc:"Account matching accountType"`
	Movement        string `json:"movement" enum:"ordinary,saving-transfer,current-transfer" doc:"Classified movement"`
	CreatedAt       string `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
}

func fromModel(t model.Transaction) Transaction {
	out := Transaction{
		ID:              t.ID,
		Date:            t.Date,
		Name:            t.Name,
		Amount:          t.Amount.String(),
		Type:            string(t.Type),
		Category:        t.Category,
		IsPrelevement:   t.IsPrelevement,
		CurrentAccount:  t.CurrentAccount,
		SavingAccount:   t.SavingAccount,
		TransferAccount: t.TransferAccount,
		AccountType:     t.AccountType(),
		AccountName:     t.AccountName(),
		Movement:        t.Movement.Movement.String(),
	}
	if !t.CreatedAt.IsZero() {
		out.CreatedAt = t.CreatedAt.Format(time.RFC3339)
	}
	return out
}

// FromModels converts a list of records for other handler packages.
func FromModels(txs []model.Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	for i, t := range txs {
		out[i] = fromModel(t)
	}
	return out
}

// TransactionBody is the request body for creating or updating a transaction.
type TransactionBody struct {
	Date            string `json:"date" required:"true" doc:"ISO-8601 date"`
	Name            string `json:"name,omitempty" doc:"Label"`
	Amount          string `json:"amount" required:"true" doc:"Decimal amount, the sign is ignored"`
	Type            string `json:"type" required:"true" doc:"income or expense"`
	Category        string `json:"category,omitempty" doc:"Category; Saving and Account Transfer have accounting meaning"`
	IsPrelevement   bool   `json:"isPrelevement,omitempty" doc:"Recurring direct debit, forces type expense"`
	CurrentAccount  string `json:"currentAccount,omitempty" doc:"Current account, defaults to the first one"`
	SavingAccount   string `json:"savingAccount,omitempty" doc:"Required for category Saving"`
	TransferAccount string `json:"transferAccount,omitempty" doc:"Required for category Account Transfer"`
}

// parseTransactionBody converts the request body into a draft. Registry
// dependent checks happen in the service.
func parseTransactionBody(body TransactionBody) (model.Draft, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return model.Draft{}, huma.NewError(http.StatusBadRequest, "invalid amount", model.ErrInvalidAmount)
	}
	typ, err := model.ParseType(body.Type)
	if err != nil {
		return model.Draft{}, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}
	return model.Draft{
		Date:            body.Date,
		Name:            body.Name,
		Amount:          amount,
		Type:            typ,
		Category:        body.Category,
		IsPrelevement:   body.IsPrelevement,
		CurrentAccount:  body.CurrentAccount,
		SavingAccount:   body.SavingAccount,
		TransferAccount: body.TransferAccount,
	}, nil
}

// TransactionOutput is the Huma output for a single transaction.
type TransactionOutput struct {
	Status int
	Body   Transaction
}

// IDInput addresses one transaction by id.
type IDInput struct {
	ID string `path:"id" minLength:"1" doc:"Transaction id"`
}
