package model

import "errors"

var (
	// ErrMissingParameter indicates a required parameter was left unset.
	ErrMissingParameter = errors.New("model: required parameter is not set")
	// ErrNonPositiveParameter indicates a required parameter is zero or negative.
	ErrNonPositiveParameter = errors.New("model: parameter must be greater than 0")
	// ErrInfeasibleGeometry indicates the parameters are individually valid but
	// describe parts that would overlap or cannot be manufactured together.
	ErrInfeasibleGeometry = errors.New("model: parameters describe infeasible geometry")
)
