package extract

import "errors"

// ErrMalformed is returned by ParseTerms when a reply carries no usable terms.
var ErrMalformed = errors.New("malformed extraction response")
