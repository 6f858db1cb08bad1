package usecase

import (
	"context"
	"log/slog"
)

// NoopGateway stands in until a real processor is integrated. Every
// hold and release succeeds.
type NoopGateway struct{}

func NewNoopGateway() PaymentGateway {
	return &NoopGateway{}
}

func (g *NoopGateway) Hold(_ context.Context, bookingRef string, amountCents int64) error {
	slog.Debug("payment hold accepted", "booking_ref", bookingRef, "amount_cents", amountCents)
	return nil
}

func (g *NoopGateway) Release(_ context.Context, bookingRef string) error {
	slog.Debug("payment release accepted", "booking_ref", bookingRef)
	return nil
}
