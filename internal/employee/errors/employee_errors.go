package employeeerrors

import (
	"net/http"

	"coaltools/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrDuplicateNIK = apperror.New(
		apperror.CodeConflict,
		"employee with this NIK already exists",
		http.StatusConflict,
	)
	ErrInvalidDailyWage = apperror.New(
		apperror.CodeInvalidInput,
		"kontrak upah harian must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"employee is already inactive",
		http.StatusBadRequest,
	)
)
