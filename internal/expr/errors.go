package expr

import "errors"

var (
	// ErrSyntax marks text that is not a well-formed expression.
	ErrSyntax = errors.New("syntax error")
	// ErrUnknownName marks an identifier that is neither a constant nor a
	// function.
	ErrUnknownName = errors.New("unknown name")
	// ErrDomain marks a function argument outside the function's domain.
	ErrDomain = errors.New("argument out of domain")
)
