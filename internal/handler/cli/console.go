package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"offer-console/internal/domain/offer"
	"offer-console/internal/pkg/errs"
	"offer-console/internal/usecase/commands"
	"offer-console/internal/usecase/queries"

	"github.com/cockroachdb/errors"
)

// Console is the terminal front end over the list reconciler, the creation
// pipeline and the dashboard queries.
type Console struct {
	list      *queries.OfferList
	form      *commands.OfferForm
	search    *queries.UserSearch
	dashboard queries.DashboardQueries
	out       io.Writer
}

func NewConsole(
	list *queries.OfferList,
	form *commands.OfferForm,
	search *queries.UserSearch,
	dashboard queries.DashboardQueries,
	out io.Writer,
) *Console {
	return &Console{
		list:      list,
		form:      form,
		search:    search,
		dashboard: dashboard,
		out:       out,
	}
}

// Dashboard prints the summary cards and the weekly stat tables. Each block
// fails independently, matching the per-component error scoping of the views.
func (c *Console) Dashboard(ctx context.Context) error {
	cards, err := c.dashboard.SummaryCards(ctx, queries.FilterThisWeek)
	if err != nil {
		fmt.Fprintf(c.out, "summary error: %s\n", err.Error())
	} else if err := renderSummaryCards(c.out, cards); err != nil {
		return err
	}

	stat, err := c.dashboard.WeeklyStat(ctx, queries.FilterThisWeek)
	if err != nil {
		fmt.Fprintf(c.out, "stat error: %s\n", err.Error())
		return nil
	}
	fmt.Fprintln(c.out)
	return renderWeeklyStat(c.out, stat)
}

// OfferListParams mirrors the list controls: pagination drives fetching,
// everything else filters the fetched page locally.
type OfferListParams struct {
	Page       int
	PageSize   int
	Tab        queries.Tab
	Query      string
	TypeFilter string
}

func (c *Console) Offers(ctx context.Context, params OfferListParams) error {
	c.list.SetTab(params.Tab)
	c.list.SetQuery(params.Query)
	c.list.SetTypeFilter(params.TypeFilter)

	var err error
	if params.PageSize > 0 {
		err = c.list.SetPageAndSize(ctx, params.Page, params.PageSize)
	} else {
		err = c.list.SetPage(ctx, params.Page)
	}
	if err != nil && !errors.Is(err, errs.ErrOfferFetchFailed) {
		return err
	}
	// Fetch errors render as the component's error state
	return renderOffers(c.out, c.list.Snapshot())
}

type SendOfferParams struct {
	PlanType  string
	Additions []string
	UserQuery string
	Expired   string
	Price     *float64
}

// SendOffer resolves the user query to a concrete selection, fills the form
// and submits it. An ambiguous query prints the candidates instead of
// guessing; a draft never carries free text as its user.
func (c *Console) SendOffer(ctx context.Context, params SendOfferParams) error {
	c.form.SetPlanType(params.PlanType)
	for _, addition := range params.Additions {
		c.form.ToggleAddition(addition)
	}
	if params.Expired != "" {
		c.form.SetExpired(params.Expired)
	}
	if params.Price != nil {
		c.form.SetPrice(*params.Price)
	}

	if params.UserQuery != "" {
		candidates, err := c.search.SearchNow(ctx, params.UserQuery)
		if err != nil {
			return err
		}
		switch len(candidates) {
		case 0:
			fmt.Fprintf(c.out, "no user matches %q\n", params.UserQuery)
		case 1:
			c.form.SelectUser(offer.SelectedUser{
				ID:    candidates[0].ID,
				Name:  candidates[0].Name,
				Email: candidates[0].Email,
			})
		default:
			fmt.Fprintf(c.out, "%q is ambiguous, pick one:\n", params.UserQuery)
			if err := renderUsers(c.out, candidates); err != nil {
				return err
			}
			return errs.ErrUserNotSelected
		}
	}

	err := c.form.Submit(ctx)
	switch {
	case errors.Is(err, errs.ErrUserNotSelected):
		fmt.Fprintln(c.out, "User is required")
		return err
	case errors.Is(err, errs.ErrDraftValidation):
		for _, fieldErr := range c.form.FieldErrors() {
			fmt.Fprintf(c.out, "%s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		return err
	case err != nil:
		fmt.Fprintf(c.out, "failed to send offer: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(c.out, "Offer Sent successfully")
	return nil
}

// Users runs a one-shot candidate search.
func (c *Console) Users(ctx context.Context, query string) error {
	users, err := c.search.SearchNow(ctx, strings.TrimSpace(query))
	if err != nil {
		return err
	}
	return renderUsers(c.out, users)
}
