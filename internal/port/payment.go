package port

import (
	"context"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
)

type PaymentAuthorizer interface {
	// Authorize charges the given amount against the card. A false return
	// means the charge was declined; an error means the authorizer itself
	// failed and the order must not be created.
	Authorize(ctx context.Context, amount float64, card domain.PaymentCard) (bool, error)
}
