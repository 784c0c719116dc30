package template

import "errors"

var (
	ErrTemplateNotFound = errors.New("salary template not found")
	ErrPersonNotFound   = errors.New("person not found")
)
