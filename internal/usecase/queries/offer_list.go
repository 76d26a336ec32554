package queries

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"offer-console/internal/domain/offer"
	"offer-console/internal/infra/api"
	"offer-console/internal/pkg/config"
	"offer-console/internal/pkg/errs"
)

// OfferListGateway is the slice of the remote API the reconciler consumes.
// page is 1-based upstream.
type OfferListGateway interface {
	ListOffers(ctx context.Context, page, perPage int) (*api.OfferPage, error)
}

// OfferList reconciles one server-fetched page of offers with client-side
// filters. Filtering is page-local: changing tab, query or type filter never
// refetches, only page index and page size do. Responses from superseded
// fetches are discarded by generation, so the state always reflects the last
// requested page rather than the last resolved response.
type OfferList struct {
	mu      sync.Mutex
	gateway OfferListGateway
	logger  *slog.Logger

	page        int // 0-based
	pageSize    int
	tab         Tab
	query       string
	typeFilter  string
	rows        []api.Offer
	serverTotal int
	phase       Phase
	errMessage  string
	gen         uint64
}

func NewOfferList(gateway OfferListGateway, cfg config.ListConfig, logger *slog.Logger) *OfferList {
	return &OfferList{
		gateway:  gateway,
		logger:   logger,
		pageSize: cfg.PageSize,
		phase:    PhaseIdle,
	}
}

// ApplyFilters keeps a row iff it survives the status tab, the free-text
// query and the type filter. Pure; order preserved. Name and email match
// case-insensitively, phone by the lowercased query against the raw phone,
// type by case-insensitive equality.
func ApplyFilters(rows []api.Offer, tab Tab, query, typeFilter string) []api.Offer {
	lowerQuery := strings.ToLower(query)
	filtered := make([]api.Offer, 0, len(rows))
	for _, row := range rows {
		if tab == TabAccepted && row.Status != offer.StatusAccepted.String() {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(row.UserName), lowerQuery) &&
			!strings.Contains(strings.ToLower(row.Email), lowerQuery) &&
			!strings.Contains(row.Phone, lowerQuery) {
			continue
		}
		if typeFilter != "" && !strings.EqualFold(row.Type, typeFilter) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// DisplayedCount reconciles the pager total. Client-side filters narrow only
// the fetched page, so the server total is accurate only while no such filter
// is active; otherwise the same-page match count is reported.
func DisplayedCount(filteredLen int, query, typeFilter string, serverTotal int) int {
	if query != "" || typeFilter != "" {
		return filteredLen
	}
	return serverTotal
}

// Refresh fetches the current page. On a non-success response or transport
// failure the prior rows stay untouched and the error text becomes the
// component's error state.
func (l *OfferList) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	page := l.page
	pageSize := l.pageSize
	l.phase = PhaseLoading
	l.mu.Unlock()

	resp, err := l.gateway.ListOffers(ctx, page+1, pageSize)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		l.logger.Debug("discarding superseded offer page", "gen", gen, "latest", l.gen)
		return errs.ErrStaleResponse
	}
	if err != nil {
		l.phase = PhaseError
		l.errMessage = err.Error()
		return errs.Mark(err, errs.ErrOfferFetchFailed)
	}

	l.rows = resp.Data
	l.serverTotal = resp.Meta.Total
	l.phase = PhaseSuccess
	l.errMessage = ""
	return nil
}

// SetPage moves to a 0-based page index and refetches.
func (l *OfferList) SetPage(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}
	l.mu.Lock()
	l.page = page
	l.mu.Unlock()
	return l.Refresh(ctx)
}

// SetPageAndSize applies both pager controls with a single fetch, for
// callers that know the full target state up front.
func (l *OfferList) SetPageAndSize(ctx context.Context, page, size int) error {
	if size <= 0 {
		return errs.New("page size must be positive")
	}
	if page < 0 {
		page = 0
	}
	l.mu.Lock()
	l.page = page
	l.pageSize = size
	l.mu.Unlock()
	return l.Refresh(ctx)
}

// SetPageSize changes the page size, resets the page index to 0 and
// refetches.
func (l *OfferList) SetPageSize(ctx context.Context, size int) error {
	if size <= 0 {
		return errs.New("page size must be positive")
	}
	l.mu.Lock()
	l.pageSize = size
	l.page = 0
	l.mu.Unlock()
	return l.Refresh(ctx)
}

// SetTab switches the status tab. No refetch.
func (l *OfferList) SetTab(tab Tab) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tab = tab
}

// SetQuery updates the free-text search. No refetch.
func (l *OfferList) SetQuery(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query = query
}

// SetTypeFilter updates the type filter. No refetch.
func (l *OfferList) SetTypeFilter(typeFilter string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.typeFilter = typeFilter
}

// Snapshot derives the rendered view from the fetched page and the active
// filters.
func (l *OfferList) Snapshot() OfferListSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	filtered := ApplyFilters(l.rows, l.tab, l.query, l.typeFilter)
	return OfferListSnapshot{
		Rows:           filtered,
		DisplayedCount: DisplayedCount(len(filtered), l.query, l.typeFilter, l.serverTotal),
		ServerTotal:    l.serverTotal,
		Page:           l.page,
		PageSize:       l.pageSize,
		Phase:          l.phase,
		ErrorMessage:   l.errMessage,
	}
}
