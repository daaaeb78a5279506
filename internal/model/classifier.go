package model

// Movement tags what a transaction means for the books.
type Movement int8

const (
	Ordinary Movement = iota
	SavingTransfer
	CurrentTransfer
)

func (m Movement) String() string {
	switch m {
	case SavingTransfer:
		return "saving-transfer"
	case CurrentTransfer:
		return "current-transfer"
	default:
		return "ordinary"
	}
}

// MovementKind is the classified form of a transaction. Counterpart holds the
// saving account of a SavingTransfer or the receiving current account of a
// CurrentTransfer, and is empty for Ordinary movements.
type MovementKind struct {
	Movement    Movement
	Counterpart string
}

// Classify maps the category and its sub-fields to a MovementKind. A special
// category missing its sub-field is Ordinary.
func Classify(category, savingAccount, transferAccount string) MovementKind {
	switch category {
	case CategorySaving:
		if savingAccount != "" {
			return MovementKind{Movement: SavingTransfer, Counterpart: savingAccount}
		}
	case CategoryTransfer, CategoryAccountTransfer:
		if transferAccount != "" {
			return MovementKind{Movement: CurrentTransfer, Counterpart: transferAccount}
		}
	}
	return MovementKind{Movement: Ordinary}
}

// SavingAccount is the saving leg of a SavingTransfer.
func (k MovementKind) SavingAccount() (string, bool) {
	if k.Movement != SavingTransfer {
		return "", false
	}
	return k.Counterpart, true
}

// TransferAccount is the receiving leg of a CurrentTransfer.
func (k MovementKind) TransferAccount() (string, bool) {
	if k.Movement != CurrentTransfer {
		return "", false
	}
	return k.Counterpart, true
}

func IsSavingTransfer(t Transaction) bool {
	return t.Movement.Movement == SavingTransfer
}

func IsCurrentTransfer(t Transaction) bool {
	return t.Movement.Movement == CurrentTransfer
}

// IsRealIncome reports money entering from outside the tracked accounts.
func IsRealIncome(t Transaction) bool {
	return t.Movement.Movement == Ordinary && t.Type == TypeIncome
}

// IsRealOutcome reports money leaving to outside the tracked accounts.
func IsRealOutcome(t Transaction) bool {
	return t.Movement.Movement == Ordinary && t.Type == TypeExpense
}
