package book

import "errors"

// Domain errors returned by the engine built on top of this package.
// Kept here (rather than in internal/engine) so both the core and any
// external adapter can match on them with errors.Is. The engine does
// not return ErrOrderNotFound: CancelOrder reports an unknown id as false.
var (
	ErrDuplicateOrderID = errors.New("book: order id already live")
	ErrInvalidPrice     = errors.New("book: price must be positive")
	ErrInvalidQuantity  = errors.New("book: quantity must be positive")
	ErrOrderNotFound    = errors.New("book: order not found")
)
