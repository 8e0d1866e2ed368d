package paycomponenterrors

import (
	"net/http"

	"coaltools/internal/shared/apperror"
)

// Kesalahan konfigurasi komponen ditangkap saat simpan katalog, bukan saat
// kalkulasi payroll. Kalkulasi mengasumsikan katalog sudah tervalidasi.
var (
	ErrInvalidComponentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid pay component id",
		http.StatusBadRequest,
	)
	ErrComponentNotFound = apperror.New(
		apperror.CodeNotFound,
		"pay component not found",
		http.StatusNotFound,
	)
	ErrRateRequired = apperror.New(
		apperror.CodeInvalidConfiguration,
		"rate is required for PER_DAY and PERCENTAGE methods",
		http.StatusBadRequest,
	)
	ErrNominalRequired = apperror.New(
		apperror.CodeInvalidConfiguration,
		"nominal is required for FLAT method",
		http.StatusBadRequest,
	)
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidConfiguration,
		"kind must be EARNING or DEDUCTION",
		http.StatusBadRequest,
	)
	ErrInvalidMethod = apperror.New(
		apperror.CodeInvalidConfiguration,
		"method must be FLAT, PER_DAY, or PERCENTAGE",
		http.StatusBadRequest,
	)
	ErrInvalidBasis = apperror.New(
		apperror.CodeInvalidConfiguration,
		"basis must be DAILY_WAGE, GROSS_PAY, or WORKDAYS",
		http.StatusBadRequest,
	)
	ErrTaxableDeduction = apperror.New(
		apperror.CodeInvalidConfiguration,
		"taxable flag applies to earnings only",
		http.StatusBadRequest,
	)
	ErrInvalidCapRange = apperror.New(
		apperror.CodeInvalidConfiguration,
		"cap_min must be less than or equal to cap_max",
		http.StatusBadRequest,
	)
	ErrNegativeCap = apperror.New(
		apperror.CodeInvalidConfiguration,
		"caps cannot be negative",
		http.StatusBadRequest,
	)
)
