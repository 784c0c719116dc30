package person

import "errors"

var (
	ErrPersonNotFound   = errors.New("person not found")
	ErrPersonNameExists = errors.New("person name already exists")
)
