//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/principal"
	"court-booking/internal/domain/schedule"
	"court-booking/internal/infra"
	"court-booking/internal/infra/readstore"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase"
	usecasemock "court-booking/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BlockingCommandsTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockCtrl   *gomock.Controller
	mockUoW    *usecasemock.MockUnitOfWork
	mockTx     *usecasemock.MockTx
	mockCourts *usecasemock.MockCourtReader
	mockBlocks *usecasemock.MockBlockedSlotRepository
	mockClaims *usecasemock.MockClaimReader
	commands   usecase.BlockingCommands

	courtID uuid.UUID
	owner   principal.Principal
	day     time.Time
}

func (s *BlockingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = usecasemock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = usecasemock.NewMockTx(s.mockCtrl)
	s.mockCourts = usecasemock.NewMockCourtReader(s.mockCtrl)
	s.mockBlocks = usecasemock.NewMockBlockedSlotRepository(s.mockCtrl)
	s.mockClaims = usecasemock.NewMockClaimReader(s.mockCtrl)

	s.courtID = uuid.New()
	s.owner = principal.Principal{ID: uuid.New(), Role: principal.RoleOwner}
	s.day = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	s.commands = usecase.NewBlockingCommands(s.mockUoW, s.mockCourts)
}

func (s *BlockingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBlockingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BlockingCommandsTestSuite))
}

func (s *BlockingCommandsTestSuite) window(start, end schedule.TimeOfDay) schedule.Window {
	w, err := schedule.NewWindow(s.day, start, end)
	s.Require().NoError(err)
	return w
}

func (s *BlockingCommandsTestSuite) ownCourt() *readstore.CourtSnapshot {
	return &readstore.CourtSnapshot{
		ID:                s.courtID,
		FacilityID:        uuid.New(),
		OwnerID:           s.owner.ID,
		Name:              "Court 2",
		Sport:             "tennis",
		PricePerHourCents: 2500,
	}
}

func (s *BlockingCommandsTestSuite) expectSerializable(times int) {
	s.mockUoW.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, usecase.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).Times(times)
}

func (s *BlockingCommandsTestSuite) expectWithin(times int) {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, usecase.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).Times(times)
}

// ================================================================================
// TestBlock
// ================================================================================

func (s *BlockingCommandsTestSuite) TestBlock() {
	input := usecase.BulkBlockInput{
		CourtID: s.courtID,
		Windows: []schedule.Window{s.window(10*60, 11*60), s.window(11*60, 12*60)},
		Reason:  "private event",
		Actor:   s.owner,
	}

	s.Run("success: blocks every free slot", func() {
		s.mockCourts.EXPECT().FindByID(gomock.Any(), s.courtID).Return(s.ownCourt(), nil).Times(1)
		s.expectSerializable(2)
		s.mockTx.EXPECT().Claims().Return(s.mockClaims).Times(2)
		s.mockClaims.EXPECT().ActiveClaims(gomock.Any(), s.courtID, s.day).Return(nil, nil).Times(2)
		s.mockTx.EXPECT().Blocks().Return(s.mockBlocks).Times(2)
		s.mockBlocks.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		result, err := s.commands.Block(s.ctx, input)

		s.Require().NoError(err)
		s.Len(result.Outcomes, 2)
		s.Equal(usecase.OutcomeBlocked, result.Outcomes[0].Outcome)
		s.Equal(usecase.OutcomeBlocked, result.Outcomes[1].Outcome)
		s.Zero(result.Failed)
	})

	s.Run("success: a reserved slot fails alone, the rest block", func() {
		taken := []schedule.Claim{{
			Kind:   schedule.ClaimReservation,
			ID:     uuid.New(),
			Window: s.window(10*60, 11*60),
		}}

		s.mockCourts.EXPECT().FindByID(gomock.Any(), s.courtID).Return(s.ownCourt(), nil).Times(1)
		s.expectSerializable(2)
		s.mockTx.EXPECT().Claims().Return(s.mockClaims).Times(2)
		s.mockClaims.EXPECT().ActiveClaims(gomock.Any(), s.courtID, s.day).Return(taken, nil).Times(2)
		s.mockTx.EXPECT().Blocks().Return(s.mockBlocks).Times(1)
		s.mockBlocks.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		result, err := s.commands.Block(s.ctx, input)

		s.Require().NoError(err)
		s.Equal(usecase.OutcomeConflict, result.Outcomes[0].Outcome)
		s.Equal("reservation", result.Outcomes[0].Detail)
		s.Equal(usecase.OutcomeBlocked, result.Outcomes[1].Outcome)
		s.Equal(1, result.Failed)
	})

	s.Run("success: re-blocking an already blocked slot refreshes it", func() {
		existing := []schedule.Claim{{
			Kind:   schedule.ClaimBlocked,
			ID:     uuid.New(),
			Window: s.window(10*60, 11*60),
		}}
		single := usecase.BulkBlockInput{
			CourtID: s.courtID,
			Windows: []schedule.Window{s.window(10*60, 11*60)},
			Reason:  "extended closure",
			Actor:   s.owner,
		}

		s.mockCourts.EXPECT().FindByID(gomock.Any(), s.courtID).Return(s.ownCourt(), nil).Times(1)
		s.expectSerializable(1)
		s.mockTx.EXPECT().Claims().Return(s.mockClaims).Times(1)
		s.mockClaims.EXPECT().ActiveClaims(gomock.Any(), s.courtID, s.day).Return(existing, nil).Times(1)
		s.mockTx.EXPECT().Blocks().Return(s.mockBlocks).Times(1)
		s.mockBlocks.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		result, err := s.commands.Block(s.ctx, single)

		s.Require().NoError(err)
		s.Equal(usecase.OutcomeBlocked, result.Outcomes[0].Outcome)
		s.Zero(result.Failed)
	})

	s.Run("success: store failure on one slot is contained", func() {
		s.mockCourts.EXPECT().FindByID(gomock.Any(), s.courtID).Return(s.ownCourt(), nil).Times(1)
		s.expectSerializable(2)
		s.mockTx.EXPECT().Claims().Return(s.mockClaims).Times(2)
		s.mockClaims.EXPECT().ActiveClaims(gomock.Any(), s.courtID, s.day).Return(nil, nil).Times(2)
		s.mockTx.EXPECT().Blocks().Return(s.mockBlocks).Times(2)
		first := s.mockBlocks.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset")).Times(1)
		s.mockBlocks.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(1).After(first)

		result, err := s.commands.Block(s.ctx, input)

		s.Require().NoError(err)
		s.Equal(usecase.OutcomeFailed, result.Outcomes[0].Outcome)
		s.Equal(usecase.OutcomeBlocked, result.Outcomes[1].Outcome)
		s.Equal(1, result.Failed)
	})

	s.Run("error: empty slot list", func() {
		_, err := s.commands.Block(s.ctx, usecase.BulkBlockInput{CourtID: s.courtID, Actor: s.owner})
		s.True(errs.Is(err, usecase.ErrValidation))
	})

	s.Run("error: foreign court is denied for owners", func() {
		foreign := s.ownCourt()
		foreign.OwnerID = uuid.New()
		s.mockCourts.EXPECT().FindByID(gomock.Any(), s.courtID).Return(foreign, nil).Times(1)

		_, err := s.commands.Block(s.ctx, input)
		s.True(errs.Is(err, usecase.ErrAccessDenied))
	})

	s.Run("success: admins bypass the ownership check", func() {
		admin := usecase.BulkBlockInput{
			CourtID: s.courtID,
			Windows: []schedule.Window{s.window(10*60, 11*60)},
			Reason:  "inspection",
			Actor:   principal.Principal{ID: uuid.New(), Role: principal.RoleAdmin},
		}
		foreign := s.ownCourt()
		foreign.OwnerID = uuid.New()

		s.mockCourts.EXPECT().FindByID(gomock.Any(), s.courtID).Return(foreign, nil).Times(1)
		s.expectSerializable(1)
		s.mockTx.EXPECT().Claims().Return(s.mockClaims).Times(1)
		s.mockClaims.EXPECT().ActiveClaims(gomock.Any(), s.courtID, s.day).Return(nil, nil).Times(1)
		s.mockTx.EXPECT().Blocks().Return(s.mockBlocks).Times(1)
		s.mockBlocks.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		result, err := s.commands.Block(s.ctx, admin)

		s.Require().NoError(err)
		s.Equal(usecase.OutcomeBlocked, result.Outcomes[0].Outcome)
	})

	s.Run("error: unknown court", func() {
		s.mockCourts.EXPECT().FindByID(gomock.Any(), s.courtID).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "no court")).Times(1)

		_, err := s.commands.Block(s.ctx, input)
		s.True(errs.Is(err, usecase.ErrNotFound))
	})
}

// ================================================================================
// TestUnblock
// ================================================================================

func (s *BlockingCommandsTestSuite) TestUnblock() {
	input := usecase.BulkUnblockInput{
		CourtID: s.courtID,
		Windows: []schedule.Window{s.window(10*60, 11*60), s.window(14*60, 15*60)},
		Actor:   s.owner,
	}

	s.Run("success: removes existing, reports missing", func() {
		s.mockCourts.EXPECT().FindByID(gomock.Any(), s.courtID).Return(s.ownCourt(), nil).Times(1)
		s.expectWithin(2)
		s.mockTx.EXPECT().Blocks().Return(s.mockBlocks).Times(2)
		s.mockBlocks.EXPECT().Delete(gomock.Any(), s.courtID, input.Windows[0]).Return(true, nil).Times(1)
		s.mockBlocks.EXPECT().Delete(gomock.Any(), s.courtID, input.Windows[1]).Return(false, nil).Times(1)

		result, err := s.commands.Unblock(s.ctx, input)

		s.Require().NoError(err)
		s.Equal(usecase.OutcomeRemoved, result.Outcomes[0].Outcome)
		s.Equal(usecase.OutcomeNotFound, result.Outcomes[1].Outcome)
		s.Equal(1, result.Failed)
	})

	s.Run("error: foreign court is denied", func() {
		foreign := s.ownCourt()
		foreign.OwnerID = uuid.New()
		s.mockCourts.EXPECT().FindByID(gomock.Any(), s.courtID).Return(foreign, nil).Times(1)

		_, err := s.commands.Unblock(s.ctx, input)
		s.True(errs.Is(err, usecase.ErrAccessDenied))
	})

	s.Run("success: store failure marks the slot failed", func() {
		s.mockCourts.EXPECT().FindByID(gomock.Any(), s.courtID).Return(s.ownCourt(), nil).Times(1)
		s.expectWithin(2)
		s.mockTx.EXPECT().Blocks().Return(s.mockBlocks).Times(2)
		s.mockBlocks.EXPECT().Delete(gomock.Any(), s.courtID, input.Windows[0]).
			Return(false, errors.New("connection reset")).Times(1)
		s.mockBlocks.EXPECT().Delete(gomock.Any(), s.courtID, input.Windows[1]).Return(true, nil).Times(1)

		result, err := s.commands.Unblock(s.ctx, input)

		s.Require().NoError(err)
		s.Equal(usecase.OutcomeFailed, result.Outcomes[0].Outcome)
		s.Equal(usecase.OutcomeRemoved, result.Outcomes[1].Outcome)
		s.Equal(1, result.Failed)
	})
}
