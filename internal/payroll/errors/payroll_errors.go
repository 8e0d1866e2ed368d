package payrollerrors

import (
	"net/http"

	"coaltools/internal/shared/apperror"
	"coaltools/internal/workflow"
)

var (
	ErrInvalidRunID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll run id",
		http.StatusBadRequest,
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll run not found",
		http.StatusNotFound,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"periode_akhir must not be before periode_awal",
		http.StatusBadRequest,
	)
	ErrEmptyRun = apperror.New(
		apperror.CodeInvalidInput,
		"a payroll run needs at least one employee line",
		http.StatusBadRequest,
	)
	ErrLineEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"one or more employees in the run do not exist",
		http.StatusUnprocessableEntity,
	)
	ErrLineEmployeeInactive = apperror.New(
		apperror.CodeInvalidInput,
		"one or more employees in the run are inactive",
		http.StatusUnprocessableEntity,
	)
	ErrDuplicateLineEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"an employee appears more than once in the run",
		http.StatusUnprocessableEntity,
	)
	ErrRunNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"only DRAFT payroll runs can be modified or deleted",
		http.StatusConflict,
	)
	ErrStatusConflict = apperror.New(
		apperror.CodeConflict,
		"payroll run was modified concurrently, reload and retry",
		http.StatusConflict,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
)

// InvalidTransition membungkus workflow.InvalidTransitionError menjadi
// AppError dengan from/to di details supaya klien bisa menampilkan alasannya.
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
