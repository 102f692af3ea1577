package justification

import "errors"

// Justification domain errors
var (
	ErrJustificationNotFound = errors.New("justification not found")
	ErrAlreadyProcessed      = errors.New("justification has already been approved or rejected")
	ErrOutsideDepartment     = errors.New("justification belongs to another department")
)
