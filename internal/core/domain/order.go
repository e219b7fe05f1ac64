package domain

import "time"

// ProposedLine is a client-submitted order line, not yet verified to
// reference a real item.
type ProposedLine struct {
	ItemID   int64
	Quantity int
}

// ProposedOrder is the untrusted order submission. The declared Total is
// cross-checked against catalog prices, never trusted.
type ProposedOrder struct {
	Lines   []ProposedLine
	Total   float64
	Payment PaymentCard
}

// ValidatedLine exists only after its item was resolved against the catalog.
type ValidatedLine struct {
	ItemID    int64
	Name      string
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

// ValidatedOrder is a priced, payment-authorized order ready for storage.
// It carries no raw payment credentials.
type ValidatedOrder struct {
	Lines      []ValidatedLine
	Total      float64
	PaymentKey string
	Payment    PaymentSummary
}

type StoredLine struct {
	ID       int64
	ItemID   int64
	Quantity int
}

// StoredOrder is a ValidatedOrder after commit: identifier and timestamp are
// assigned by the store. Orders are immutable once created.
type StoredOrder struct {
	ID         int64
	Timestamp  time.Time
	Total      float64
	PaymentKey string
	Lines      []StoredLine
}
