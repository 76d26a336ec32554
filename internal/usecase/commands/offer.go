package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"offer-console/internal/domain/offer"
	"offer-console/internal/infra/api"
	"offer-console/internal/pkg/clock"
	"offer-console/internal/pkg/config"
	"offer-console/internal/pkg/errs"
)

// OfferForm is the offer-creation pipeline: it accumulates a draft, validates
// it as a whole on submit, and turns a valid draft into one create request.
// Transient notices ("user is required", "offer sent") are clock-driven and
// expire after the configured duration instead of being cleared by timers,
// which keeps them deterministic under a mock clock.
type OfferForm struct {
	mu             sync.Mutex
	gateway        OffersGateway
	clock          clock.Clock
	logger         *slog.Logger
	noticeDuration time.Duration

	draft             offer.Draft
	fieldErrors       []offer.FieldError
	userRequiredUntil time.Time
	offerSentUntil    time.Time
}

func NewOfferForm(gateway OffersGateway, clk clock.Clock, cfg config.ListConfig, logger *slog.Logger) *OfferForm {
	return &OfferForm{
		gateway:        gateway,
		clock:          clk,
		logger:         logger,
		noticeDuration: cfg.NoticeDuration,
		draft:          offer.NewDraft(clk.Now()),
	}
}

func (f *OfferForm) Draft() offer.Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *OfferForm) SetPlanType(planType string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.PlanType = planType
}

// ToggleAddition flips one addition flag on the draft.
func (f *OfferForm) ToggleAddition(addition string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, existing := range f.draft.Additions {
		if existing == addition {
			f.draft.Additions = append(f.draft.Additions[:i], f.draft.Additions[i+1:]...)
			return
		}
	}
	f.draft.Additions = append(f.draft.Additions, addition)
}

// SelectUser records an explicit autocomplete pick. Free text never reaches
// this; only a concrete candidate does.
func (f *OfferForm) SelectUser(user offer.SelectedUser) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.User = user
}

func (f *OfferForm) ClearUser() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.User = offer.SelectedUser{}
}

func (f *OfferForm) SetExpired(expired string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Expired = expired
}

func (f *OfferForm) SetPrice(price float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Price = &price
}

// FieldErrors returns the failures from the last submit attempt. They render
// inline and never block further editing.
func (f *OfferForm) FieldErrors() []offer.FieldError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrors
}

// UserRequiredNotice reports whether the transient "user is required" notice
// is still showing.
func (f *OfferForm) UserRequiredNotice() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clock.Now().Before(f.userRequiredUntil)
}

// OfferSent reports whether the transient success notice is still showing.
func (f *OfferForm) OfferSent() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clock.Now().Before(f.offerSentUntil)
}

// Submit validates the draft and issues the create request. An unselected
// user raises the transient notice and aborts before any network call. A
// failed create is logged and leaves the draft populated; a successful one
// raises the success notice and resets the draft to defaults.
func (f *OfferForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	draft := f.draft
	now := f.clock.Now()
	f.mu.Unlock()

	if !draft.User.IsSelected() {
		f.mu.Lock()
		f.userRequiredUntil = now.Add(f.noticeDuration)
		f.mu.Unlock()
		return errs.ErrUserNotSelected
	}

	validated, fieldErrs := draft.Validate(now)
	f.mu.Lock()
	f.fieldErrors = fieldErrs
	f.mu.Unlock()
	if len(fieldErrs) > 0 {
		return errs.ErrDraftValidation
	}

	resp, err := f.gateway.CreateOffer(ctx, buildPayload(validated))
	if err != nil {
		// Draft stays populated so the caller can retry
		markedErr := errs.Mark(err, errs.ErrOfferCreateFailed)
		f.logger.Warn("failed to submit offer",
			"error", err.Error(),
			"stack", errs.ExtractStackLines(markedErr, 5),
		)
		return markedErr
	}

	f.mu.Lock()
	f.offerSentUntil = f.clock.Now().Add(f.noticeDuration)
	f.fieldErrors = nil
	f.draft = offer.NewDraft(f.clock.Now())
	f.mu.Unlock()

	f.logger.Info("offer submitted", "offer_id", resp.ID)
	return nil
}

// buildPayload substitutes user_id for the selected user object.
func buildPayload(v *offer.Validated) api.CreateOfferRequest {
	additions := make([]string, 0, len(v.Additions))
	for _, addition := range v.Additions {
		additions = append(additions, addition.String())
	}
	return api.CreateOfferRequest{
		PlanType:  v.PlanType.String(),
		Additions: additions,
		UserID:    v.User.ID,
		Expired:   v.Expired.Format("2006-01-02"),
		Price:     v.Price,
	}
}
