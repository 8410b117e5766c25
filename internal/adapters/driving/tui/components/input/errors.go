package input

import "errors"

var errInvalidChar = errors.New("invalid character")
