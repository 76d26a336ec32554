package queries

import (
	"context"
	"log/slog"
	"sync"

	"offer-console/internal/infra/api"
	"offer-console/internal/pkg/config"
	"offer-console/internal/pkg/debounce"
	"offer-console/internal/pkg/errs"
)

// Candidate fetch is fixed to the first page of five, matching the
// autocomplete dropdown.
const (
	searchPage    = 1
	searchPerPage = 5
)

type UserSearchGateway interface {
	SearchUsers(ctx context.Context, search string, page, perPage int) ([]api.User, error)
}

// UserSearch drives the debounced autocomplete. Keystrokes restart the
// quiescence timer; only the latest generation's response populates the
// candidate list, so a slow superseded request cannot overwrite newer
// results. Candidates are ephemeral and never cached across queries.
type UserSearch struct {
	mu        sync.Mutex
	gateway   UserSearchGateway
	debouncer *debounce.Debouncer
	logger    *slog.Logger

	candidates []api.User
	loading    bool
}

func NewUserSearch(gateway UserSearchGateway, cfg config.ListConfig, logger *slog.Logger) *UserSearch {
	return &UserSearch{
		gateway:   gateway,
		debouncer: debounce.New(cfg.SearchDebounce),
		logger:    logger,
	}
}

// SetInput feeds one keystroke's worth of input. Empty input clears the
// candidates synchronously without a network call.
func (s *UserSearch) SetInput(ctx context.Context, input string) {
	if input == "" {
		s.debouncer.Cancel()
		s.mu.Lock()
		s.candidates = nil
		s.loading = false
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	s.debouncer.Do(func(gen uint64) {
		s.fetch(ctx, input, gen)
	})
}

func (s *UserSearch) fetch(ctx context.Context, input string, gen uint64) {
	users, err := s.gateway.SearchUsers(ctx, input, searchPage, searchPerPage)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.debouncer.Current() {
		s.logger.Debug("discarding superseded user search", "input", input)
		return
	}
	s.loading = false
	if err != nil {
		// Search failures are non-fatal; candidates keep their last value
		s.logger.Warn("failed to search users", "error", err.Error())
		return
	}
	s.candidates = users
}

// SearchNow bypasses the debounce for one-shot callers.
func (s *UserSearch) SearchNow(ctx context.Context, input string) ([]api.User, error) {
	if input == "" {
		return nil, nil
	}
	users, err := s.gateway.SearchUsers(ctx, input, searchPage, searchPerPage)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUserSearchFailed)
	}
	return users, nil
}

// Candidates returns the current dropdown contents.
func (s *UserSearch) Candidates() []api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.candidates
}

func (s *UserSearch) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
