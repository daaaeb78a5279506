package model

import "errors"

var (
	ErrInvalidType            = errors.New("type must be income or expense")
	ErrInvalidAmount          = errors.New("amount must be a number")
	ErrMissingSavingAccount   = errors.New("saving transfer requires a saving account")
	ErrMissingTransferAccount = errors.New("account transfer requires a transfer account")
	ErrSameTransferAccount    = errors.New("transfer account must differ from the current account")
	ErrInvalidScope           = errors.New("scope type must be all, current or saving")

	ErrEmptyAccountName   = errors.New("account name is empty")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrUnknownAccount     = errors.New("account does not exist")
	ErrLastCurrentAccount = errors.New("at least one current account is required")
)
