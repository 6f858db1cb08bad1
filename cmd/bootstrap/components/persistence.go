package components

import (
	"court-booking/internal/infra/db"
	"court-booking/internal/infra/readstore"
	"court-booking/internal/infra/uow"
	"court-booking/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork owns the write path; reads go straight to the pool.
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewCourtReadStore,
			fx.As(new(usecase.CourtReader)),
		),
		fx.Annotate(
			readstore.NewClaimReadStore,
			fx.As(new(usecase.ClaimReader)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(usecase.ReservationViewReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
