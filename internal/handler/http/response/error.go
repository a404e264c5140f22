package response

import (
	"errors"
	"net/http"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/bonus"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/employee"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/payroll"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/shift"
	"github.com/ANDREYDEN/acacio-sub000/internal/pkg/jwt"
	"github.com/ANDREYDEN/acacio-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, bonus.ErrBonusNotFound):
		NotFound(w, "Bonus not found")

	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
