package usecase

import (
	"context"

	"court-booking/internal/domain/principal"
	"court-booking/internal/infra"
	"court-booking/internal/infra/readstore"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor principal.Principal) (*readstore.ReservationView, error)
	ListMine(ctx context.Context, actor principal.Principal) ([]*readstore.ReservationView, error)
}

type reservationQueriesImpl struct {
	views ReservationViewReader
}

func NewReservationQueries(views ReservationViewReader) ReservationQueries {
	return &reservationQueriesImpl{views: views}
}

// GetByID hides other customers' reservations: a reservation the actor
// may not see reports not-found, never denied.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor principal.Principal) (*readstore.ReservationView, error) {
	view, err := q.views.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if !actor.IsStaff() && (view.CustomerID == nil || *view.CustomerID != actor.ID) {
		return nil, errs.Mark(errs.New("reservation not visible to actor"), ErrNotFound)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, actor principal.Principal) ([]*readstore.ReservationView, error) {
	views, err := q.views.ListByCustomer(ctx, actor.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return views, nil
}
