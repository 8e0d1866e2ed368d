package kasbesarerrors

import (
	"net/http"

	"coaltools/internal/shared/apperror"
	"coaltools/internal/workflow"
)

var (
	ErrInvalidTransactionID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid kas besar transaction id",
		http.StatusBadRequest,
	)
	ErrTransactionNotFound = apperror.New(
		apperror.CodeNotFound,
		"kas besar transaction not found",
		http.StatusNotFound,
	)
	ErrTotalMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"total does not match banyak x harga satuan",
		http.StatusUnprocessableEntity,
	)
	ErrTransactionNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"only DRAFT kas besar transactions can be modified or deleted",
		http.StatusConflict,
	)
	ErrStatusConflict = apperror.New(
		apperror.CodeConflict,
		"kas besar transaction was modified concurrently, reload and retry",
		http.StatusConflict,
	)
)

func InvalidTransition(err *workflow.InvalidTransitionError) *apperror.AppError {
	return apperror.Wrap(
		err,
		apperror.CodeInvalidState,
		err.Error(),
		http.StatusConflict,
	).WithDetails(map[string]string{
		"from": string(err.From),
		"to":   string(err.To),
	})
}
