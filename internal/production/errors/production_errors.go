package productionerrors

import (
	"net/http"

	"coaltools/internal/shared/apperror"
	"coaltools/internal/workflow"
)

var (
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid production report id",
		http.StatusBadRequest,
	)
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"production report not found",
		http.StatusNotFound,
	)
	ErrTareExceedsGross = apperror.New(
		apperror.CodeInvalidInput,
		"tare tons cannot exceed gross tons",
		http.StatusUnprocessableEntity,
	)
	ErrReportBuyerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"buyer referenced by the report does not exist",
		http.StatusUnprocessableEntity,
	)
	ErrReportNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"only DRAFT production reports can be modified or deleted",
		http.StatusConflict,
	)
	ErrStatusConflict = apperror.New(
		apperror.CodeConflict,
		"production report was modified concurrently, reload and retry",
		http.StatusConflict,
	)
)

// InvalidTransition membungkus workflow.InvalidTransitionError menjadi
// AppError dengan from/to di details.
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
