package salaryfield

import "errors"

var (
	ErrSalaryFieldNotFound  = errors.New("salary field not found")
	ErrSalaryFieldKeyExists = errors.New("salary field key already exists")
	ErrInvalidFieldType     = errors.New("invalid salary field type")
)
