// Package apierror maps service errors onto HTTP problems.
package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/service"
	"github.com/carson-networks/compta-server/internal/storage"
)

var badRequest = []error{
	model.ErrInvalidType,
	model.ErrInvalidAmount,
	model.ErrInvalidDate,
	model.ErrInvalidScope,
	model.ErrMissingSavingAccount,
	model.ErrMissingTransferAccount,
	model.ErrSameTransferAccount,
	model.ErrEmptyAccountName,
	service.ErrInvalidAccountKind,
}

var conflict = []error{
	model.ErrDuplicateAccount,
	model.ErrLastCurrentAccount,
}

var notFound = []error{
	model.ErrUnknownAccount,
	storage.ErrNotFound,
}

// FromService wraps err in a huma error whose status matches its cause.
// Unrecognised errors become a 500 carrying msg.
func FromService(err error, msg string) error {
	switch {
	case isAny(err, badRequest):
		return huma.NewError(http.StatusBadRequest, err.Error(), err)
	case isAny(err, conflict):
		return huma.NewError(http.StatusConflict, err.Error(), err)
	case isAny(err, notFound):
		return huma.NewError(http.StatusNotFound, err.Error(), err)
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
