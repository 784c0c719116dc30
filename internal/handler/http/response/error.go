package response

import (
	"errors"
	"net/http"

	"github.com/salarium/salarium-backend-go/internal/domain/person"
	"github.com/salarium/salarium-backend-go/internal/domain/salary"
	"github.com/salarium/salarium-backend-go/internal/domain/salaryfield"
	"github.com/salarium/salarium-backend-go/internal/domain/template"
	"github.com/salarium/salarium-backend-go/internal/pkg/jwt"
	"github.com/salarium/salarium-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid or missing token")

	// Person domain errors
	case errors.Is(err, person.ErrPersonNotFound):
		NotFound(w, "Person not found")
	case errors.Is(err, person.ErrPersonNameExists):
		Conflict(w, "Person name already exists")

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrSalaryRecordAlreadyExists):
		Conflict(w, "Salary record already exists for this month")
	case errors.Is(err, salary.ErrPersonNotFound):
		NotFound(w, "Person not found")

	// Salary field domain errors
	case errors.Is(err, salaryfield.ErrSalaryFieldNotFound):
		NotFound(w, "Salary field not found")
	case errors.Is(err, salaryfield.ErrSalaryFieldKeyExists):
		Conflict(w, "Salary field key already exists")
	case errors.Is(err, salaryfield.ErrInvalidFieldType):
		BadRequest(w, "Invalid salary field type", nil)

	// Template domain errors
	case errors.Is(err, template.ErrTemplateNotFound):
		NotFound(w, "Salary template not found")
	case errors.Is(err, template.ErrPersonNotFound):
		NotFound(w, "Person not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
