package justificationtype

import "errors"

var (
	ErrJustificationTypeNotFound   = errors.New("justification type not found")
	ErrJustificationTypeNameExists = errors.New("justification type with this name already exists")
)
