package payment

import (
	"context"
	"log/slog"

	"github.com/rl1809/kiosk-checkout/internal/core/domain"
)

// StubAuthorizer approves every charge. It stands in for a real gateway
// behind the same port, so swapping one in changes only the wiring in main.
type StubAuthorizer struct{}

func NewStubAuthorizer() *StubAuthorizer {
	return &StubAuthorizer{}
}

func (a *StubAuthorizer) Authorize(ctx context.Context, amount float64, card domain.PaymentCard) (bool, error) {
	// Only the holder name is safe to log.
	slog.DebugContext(ctx, "processing payment", "amount", amount, "card_holder", card.CardHolderName)
	return true, nil
}
