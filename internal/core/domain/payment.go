package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

const cardMaskPrefix = "**** **** **** "

// PaymentCard carries the raw payment credentials submitted with an order.
// It lives only for the duration of a single validation attempt and must
// never be persisted or logged.
type PaymentCard struct {
	CardNumber     string
	CardHolderName string
	ExpiryMonth    int
	ExpiryYear     int
	CVV            string
	BillingAddress map[string]any
}

// PaymentSummary is the storable form of PaymentCard: card number masked down
// to the last four digits, CVV dropped entirely.
type PaymentSummary struct {
	CardNumber     string         `json:"card_number"`
	CardHolderName string         `json:"card_holder_name"`
	ExpiryMonth    int            `json:"expiry_month"`
	ExpiryYear     int            `json:"expiry_year"`
	BillingAddress map[string]any `json:"billing_address,omitempty"`
}

func (c PaymentCard) lastFour() string {
	if len(c.CardNumber) <= 4 {
		return c.CardNumber
	}
	return c.CardNumber[len(c.CardNumber)-4:]
}

// Masked redacts everything that must not reach storage.
func (c PaymentCard) Masked() PaymentSummary {
	return PaymentSummary{
		CardNumber:     cardMaskPrefix + c.lastFour(),
		CardHolderName: c.CardHolderName,
		ExpiryMonth:    c.ExpiryMonth,
		ExpiryYear:     c.ExpiryYear,
		BillingAddress: c.BillingAddress,
	}
}

// ReferenceKey derives a short non-reversible token from the last four card
// digits and the holder name. Stable for identical inputs, so support staff
// can correlate orders paid with the same card without ever seeing it.
func (c PaymentCard) ReferenceKey() string {
	sum := sha256.Sum256([]byte(c.lastFour() + c.CardHolderName))
	return hex.EncodeToString(sum[:])[:16]
}
