package function

import "errors"

var (
	ErrFunctionNotFound   = errors.New("function not found")
	ErrFunctionNameExists = errors.New("function with this name already exists")
)
