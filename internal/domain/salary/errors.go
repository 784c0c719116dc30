package salary

import "errors"

var (
	ErrSalaryRecordNotFound      = errors.New("salary record not found")
	ErrSalaryRecordAlreadyExists = errors.New("salary record already exists for this month")
	ErrPersonNotFound            = errors.New("person not found")
)
