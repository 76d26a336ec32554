//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"testing"

	"offer-console/internal/infra/api"
	"offer-console/internal/pkg/config"
	"offer-console/internal/pkg/errs"
	"offer-console/internal/usecase/queries"
	"offer-console/tests/common/builder"
	queriesmock "offer-console/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// =============================================================================
// Pure filter functions
// =============================================================================

func fiveRowPage() *api.OfferPage {
	return builder.BuildPage(42,
		func(b *builder.OfferBuilder) { b.UserName = "Nadia Accardi"; b.Status = "accepted"; b.Type = "monthly" },
		func(b *builder.OfferBuilder) { b.Email = "acc@corp.example"; b.Status = "pending"; b.Type = "yearly" },
		func(b *builder.OfferBuilder) { b.UserName = "Pat Doyle"; b.Status = "accepted"; b.Type = "pay_as_you_go" },
		func(b *builder.OfferBuilder) { b.UserName = "Sam Lee"; b.Status = "rejected"; b.Type = "monthly" },
		func(b *builder.OfferBuilder) { b.UserName = "Kim Cho"; b.Phone = "01555x"; b.Status = "pending"; b.Type = "yearly" },
	)
}

func TestApplyFilters(t *testing.T) {
	rows := fiveRowPage().Data

	testCases := []struct {
		name       string
		tab        queries.Tab
		query      string
		typeFilter string
		wantIDs    []int64
	}{
		{name: "no filters keep everything", tab: queries.TabAll, wantIDs: []int64{1, 2, 3, 4, 5}},
		{name: "accepted tab", tab: queries.TabAccepted, wantIDs: []int64{1, 3}},
		{name: "query matches name case-insensitively", query: "ACC", wantIDs: []int64{1, 2}},
		{name: "query matches phone substring", query: "01555", wantIDs: []int64{5}},
		{name: "phone matches the lowercased query", query: "01555X", wantIDs: []int64{5}},
		{name: "type filter exact case-insensitive", typeFilter: "Monthly", wantIDs: []int64{1, 4}},
		{name: "filters compose", tab: queries.TabAccepted, query: "acc", typeFilter: "monthly", wantIDs: []int64{1}},
		{name: "no match", query: "zzz", wantIDs: []int64{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := queries.ApplyFilters(rows, tc.tab, tc.query, tc.typeFilter)

			gotIDs := make([]int64, 0, len(filtered))
			for _, row := range filtered {
				gotIDs = append(gotIDs, row.ID)
			}
			if diff := cmp.Diff(tc.wantIDs, gotIDs); diff != "" {
				t.Errorf("filtered IDs mismatch (-want +got):\n%s", diff)
			}

			// Idempotence: filtering a filtered set changes nothing
			twice := queries.ApplyFilters(filtered, tc.tab, tc.query, tc.typeFilter)
			if diff := cmp.Diff(filtered, twice); diff != "" {
				t.Errorf("ApplyFilters is not idempotent (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestDisplayedCount(t *testing.T) {
	testCases := []struct {
		name        string
		filteredLen int
		query       string
		typeFilter  string
		serverTotal int
		want        int
	}{
		{name: "no client filter reports server total", filteredLen: 5, serverTotal: 42, want: 42},
		{name: "query reports page-local match count", filteredLen: 2, query: "acc", serverTotal: 42, want: 2},
		{name: "type filter reports page-local match count", filteredLen: 3, typeFilter: "monthly", serverTotal: 42, want: 3},
		{name: "tab alone does not switch to page-local count", filteredLen: 2, serverTotal: 42, want: 42},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := queries.DisplayedCount(tc.filteredLen, tc.query, tc.typeFilter, tc.serverTotal)
			if got != tc.want {
				t.Errorf("DisplayedCount = %d, want %d", got, tc.want)
			}
		})
	}
}

// =============================================================================
// OfferList fetch state machine
// =============================================================================

type OfferListTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *queriesmock.MockOfferListGateway
	list        *queries.OfferList
}

func (s *OfferListTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = queriesmock.NewMockOfferListGateway(s.mockCtrl)
	s.list = queries.NewOfferList(s.mockGateway, config.NewTestConfig().List, testLogger())
}

func (s *OfferListTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferListSuite(t *testing.T) {
	suite.Run(t, new(OfferListTestSuite))
}

func (s *OfferListTestSuite) TestRefreshSuccess() {
	ctx := context.Background()
	s.mockGateway.EXPECT().ListOffers(gomock.Any(), 1, 5).Return(fiveRowPage(), nil).Times(1)

	s.Require().NoError(s.list.Refresh(ctx))

	snap := s.list.Snapshot()
	s.Equal(queries.PhaseSuccess, snap.Phase)
	s.Len(snap.Rows, 5)
	s.Equal(42, snap.DisplayedCount, "unfiltered pager shows the server total")
	s.Equal(42, snap.ServerTotal)
}

func (s *OfferListTestSuite) TestQueryNarrowsDisplayedCount() {
	ctx := context.Background()
	s.mockGateway.EXPECT().ListOffers(gomock.Any(), 1, 5).Return(fiveRowPage(), nil).Times(1)

	s.Require().NoError(s.list.Refresh(ctx))
	s.list.SetQuery("acc")

	snap := s.list.Snapshot()
	s.Len(snap.Rows, 2)
	s.Equal(2, snap.DisplayedCount, "active query switches the pager to the page-local count")
}

func (s *OfferListTestSuite) TestFilterChangesDoNotRefetch() {
	ctx := context.Background()
	s.mockGateway.EXPECT().ListOffers(gomock.Any(), 1, 5).Return(fiveRowPage(), nil).Times(1)

	s.Require().NoError(s.list.Refresh(ctx))
	s.list.SetTab(queries.TabAccepted)
	s.list.SetQuery("acc")
	s.list.SetTypeFilter("monthly")
	_ = s.list.Snapshot()
	// mockCtrl.Finish would fail on any extra ListOffers call
}

func (s *OfferListTestSuite) TestSetPageSizeResetsPageAndFetchesOnce() {
	ctx := context.Background()
	s.mockGateway.EXPECT().ListOffers(gomock.Any(), 3, 5).Return(fiveRowPage(), nil).Times(1)
	s.Require().NoError(s.list.SetPage(ctx, 2))

	s.mockGateway.EXPECT().ListOffers(gomock.Any(), 1, 10).Return(fiveRowPage(), nil).Times(1)
	s.Require().NoError(s.list.SetPageSize(ctx, 10))

	snap := s.list.Snapshot()
	s.Equal(0, snap.Page)
	s.Equal(10, snap.PageSize)
}

func (s *OfferListTestSuite) TestErrorLeavesPriorRowsUntouched() {
	ctx := context.Background()
	s.mockGateway.EXPECT().ListOffers(gomock.Any(), 1, 5).Return(fiveRowPage(), nil).Times(1)
	s.Require().NoError(s.list.Refresh(ctx))

	serverErr := &api.Error{Status: 500, Message: "Server Error"}
	s.mockGateway.EXPECT().ListOffers(gomock.Any(), 2, 5).Return(nil, serverErr).Times(1)
	s.Require().Error(s.list.SetPage(ctx, 1))

	snap := s.list.Snapshot()
	s.Equal(queries.PhaseError, snap.Phase)
	s.Equal("Server Error", snap.ErrorMessage, "server message surfaces verbatim")
	s.Len(snap.Rows, 5, "rows from the last successful fetch stay put")
}

func (s *OfferListTestSuite) TestSupersededFetchIsDiscarded() {
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	stalePage := builder.BuildPage(42,
		func(b *builder.OfferBuilder) { b.UserName = "Stale Row" },
	)
	s.mockGateway.EXPECT().
		ListOffers(gomock.Any(), 1, 5).
		DoAndReturn(func(context.Context, int, int) (*api.OfferPage, error) {
			close(entered)
			<-release
			return stalePage, nil
		}).Times(1)

	newerPage := builder.BuildPage(42,
		func(b *builder.OfferBuilder) { b.UserName = "Newer Row" },
	)
	s.mockGateway.EXPECT().ListOffers(gomock.Any(), 2, 5).Return(newerPage, nil).Times(1)

	staleErr := make(chan error, 1)
	go func() { staleErr <- s.list.Refresh(ctx) }()
	<-entered

	// The newer fetch lands while the first is still in flight
	s.Require().NoError(s.list.SetPage(ctx, 1))
	close(release)

	s.Require().ErrorIs(<-staleErr, errs.ErrStaleResponse)
	snap := s.list.Snapshot()
	s.Equal(queries.PhaseSuccess, snap.Phase)
	s.Require().Len(snap.Rows, 1)
	s.Equal("Newer Row", snap.Rows[0].UserName, "the late response must not overwrite the newer page")
}

func (s *OfferListTestSuite) TestSetPageAndSizeFetchesOnce() {
	ctx := context.Background()
	s.mockGateway.EXPECT().ListOffers(gomock.Any(), 3, 10).Return(fiveRowPage(), nil).Times(1)

	s.Require().NoError(s.list.SetPageAndSize(ctx, 2, 10))

	snap := s.list.Snapshot()
	s.Equal(2, snap.Page)
	s.Equal(10, snap.PageSize)
}

func (s *OfferListTestSuite) TestInvalidPageSizeRejected() {
	s.Require().Error(s.list.SetPageSize(context.Background(), 0))
	s.Require().Error(s.list.SetPageAndSize(context.Background(), 0, 0))
}
