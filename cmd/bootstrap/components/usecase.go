package components

import (
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/jwt"
	"court-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewNoopGateway,
		fx.Annotate(
			func(svc *jwt.Service) *jwt.Service { return svc },
			fx.As(new(usecase.TokenValidator)),
		),
		NewBookingCommands,
		usecase.NewBlockingCommands,
		usecase.NewMaintenanceCommands,
		usecase.NewSweepCommands,
		usecase.NewAvailabilityQueries,
		usecase.NewReservationQueries,
	),
)

func NewBookingCommands(
	uow usecase.UnitOfWork,
	courts usecase.CourtReader,
	payments usecase.PaymentGateway,
	clk clock.Clock,
	cfg config.Config,
) usecase.BookingCommands {
	return usecase.NewBookingCommands(uow, courts, payments, clk, cfg.Booking.CancellationCutoff)
}
