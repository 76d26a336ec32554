//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"offer-console/internal/domain/offer"
	"offer-console/internal/infra/api"
	"offer-console/internal/pkg/clock"
	"offer-console/internal/pkg/config"
	"offer-console/internal/pkg/errs"
	"offer-console/internal/usecase/commands"
	commandsmock "offer-console/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

type OfferFormTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *commandsmock.MockOffersGateway
	mockClock   *clock.MockClock
	form        *commands.OfferForm
}

func (s *OfferFormTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = commandsmock.NewMockOffersGateway(s.mockCtrl)
	s.mockClock = clock.NewMockClock(testNow)
	s.form = commands.NewOfferForm(
		s.mockGateway,
		s.mockClock,
		config.NewTestConfig().List,
		slog.New(slog.DiscardHandler),
	)
}

func (s *OfferFormTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferFormSuite(t *testing.T) {
	suite.Run(t, new(OfferFormTestSuite))
}

func (s *OfferFormTestSuite) fillValidForm() {
	s.form.SetPlanType("monthly")
	s.form.ToggleAddition("refundable")
	s.form.ToggleAddition("on_demand")
	s.form.SelectUser(offer.SelectedUser{ID: 7, Name: "Jamie Rivera", Email: "jamie@example.com"})
	s.form.SetExpired("2026-09-15")
	s.form.SetPrice(120)
}

func (s *OfferFormTestSuite) TestSubmitWithoutUserRaisesTransientNotice() {
	ctx := context.Background()
	s.fillValidForm()
	s.form.ClearUser()

	// No gateway expectation: the guard must abort before any network call
	err := s.form.Submit(ctx)
	s.Require().ErrorIs(err, errs.ErrUserNotSelected)

	s.True(s.form.UserRequiredNotice())
	s.mockClock.Add(2*time.Second + time.Millisecond)
	s.False(s.form.UserRequiredNotice(), "notice expires after two seconds")
}

func (s *OfferFormTestSuite) TestSubmitWithEmptyAdditionsFailsValidation() {
	ctx := context.Background()
	s.fillValidForm()
	s.form.ToggleAddition("refundable")
	s.form.ToggleAddition("on_demand") // back to empty

	err := s.form.Submit(ctx)
	s.Require().ErrorIs(err, errs.ErrDraftValidation)

	fieldErrs := s.form.FieldErrors()
	s.Require().Len(fieldErrs, 1)
	s.Equal("additions", fieldErrs[0].Field)
	s.Equal(offer.CodeMinOne, fieldErrs[0].Code)
}

func (s *OfferFormTestSuite) TestSubmitSuccessRaisesNoticeAndResets() {
	ctx := context.Background()
	s.fillValidForm()

	want := api.CreateOfferRequest{
		PlanType:  "monthly",
		Additions: []string{"refundable", "on_demand"},
		UserID:    7,
		Expired:   "2026-09-15",
		Price:     120,
	}
	s.mockGateway.EXPECT().
		CreateOffer(gomock.Any(), want).
		Return(&api.CreateOfferResponse{ID: 99}, nil).
		Times(1)

	s.Require().NoError(s.form.Submit(ctx))

	s.True(s.form.OfferSent())
	draft := s.form.Draft()
	s.Empty(draft.PlanType, "fields reset to defaults once the notice is raised")
	s.Empty(draft.Additions)
	s.False(draft.User.IsSelected())
	s.Nil(draft.Price)

	s.mockClock.Add(2*time.Second + time.Millisecond)
	s.False(s.form.OfferSent(), "success notice expires after two seconds")
}

func (s *OfferFormTestSuite) TestSubmitFailureKeepsDraftPopulated() {
	ctx := context.Background()
	s.fillValidForm()

	s.mockGateway.EXPECT().
		CreateOffer(gomock.Any(), gomock.Any()).
		Return(nil, &api.Error{Status: 422, Message: "The given data was invalid."}).
		Times(1)

	err := s.form.Submit(ctx)
	s.Require().ErrorIs(err, errs.ErrOfferCreateFailed)

	s.False(s.form.OfferSent(), "no success flag on a failed create")
	draft := s.form.Draft()
	s.Equal("monthly", draft.PlanType, "fields stay populated for a retry")
	s.True(draft.User.IsSelected())
}

func (s *OfferFormTestSuite) TestToggleAddition() {
	s.form.ToggleAddition("refundable")
	s.form.ToggleAddition("negotiable")
	s.Equal([]string{"refundable", "negotiable"}, s.form.Draft().Additions)

	s.form.ToggleAddition("refundable")
	s.Equal([]string{"negotiable"}, s.form.Draft().Additions)
}
