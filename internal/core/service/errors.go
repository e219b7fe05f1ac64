package service

import (
	"errors"
	"fmt"
)

var (
	ErrPaymentDenied    = errors.New("payment denied")
	ErrOrderNotFound    = errors.New("order not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// ItemNotFoundError rejects an order line referencing an item that does not
// exist in the catalog at validation time.
type ItemNotFoundError struct {
	ItemID int64
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item with ID %d not found", e.ItemID)
}

// TotalMismatchError rejects an order whose declared total disagrees with the
// recomputed total beyond the tolerance.
type TotalMismatchError struct {
	Expected float64
	Received float64
}

func (e *TotalMismatchError) Error() string {
	return fmt.Sprintf("total mismatch. expected: %.2f, received: %.2f", e.Expected, e.Received)
}

// ValidationError reports a rejected admin field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
