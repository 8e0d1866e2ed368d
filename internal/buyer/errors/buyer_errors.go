package buyererrors

import (
	"net/http"

	"coaltools/internal/shared/apperror"
)

var (
	ErrInvalidBuyerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid buyer id",
		http.StatusBadRequest,
	)
	ErrBuyerNotFound = apperror.New(
		apperror.CodeNotFound,
		"buyer not found",
		http.StatusNotFound,
	)
	ErrInvalidDefaultPrice = apperror.New(
		apperror.CodeInvalidInput,
		"harga per ton default must be greater than zero",
		http.StatusBadRequest,
	)
	ErrBuyerInactive = apperror.New(
		apperror.CodeInvalidInput,
		"buyer is inactive",
		http.StatusUnprocessableEntity,
	)
)
