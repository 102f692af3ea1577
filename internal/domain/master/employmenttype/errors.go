package employmenttype

import "errors"

var (
	ErrEmploymentTypeNotFound   = errors.New("employment type not found")
	ErrEmploymentTypeNameExists = errors.New("employment type with this name already exists")
)
