package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"offer-console/cmd/bootstrap"
	"offer-console/internal/handler/cli"
	"offer-console/internal/usecase/queries"

	"go.uber.org/fx"
)

const usage = `usage: offer-console <command> [flags]

commands:
  dashboard   weekly summary and stats
  offers      list offers
  send        create and send an offer
  users       search users
`

func main() {
	ctx := context.Background()

	var console *cli.Console
	app := fx.New(
		bootstrap.Module,
		fx.Populate(&console),
		// Keep the dependency graph chatter out of command output
		fx.NopLogger,
	)

	if err := app.Start(ctx); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	runErr := run(ctx, console, os.Args[1:])

	if err := app.Stop(ctx); err != nil {
		slog.Error("failed to stop application", "error", err)
	}
	if runErr != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, console *cli.Console, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "dashboard":
		return console.Dashboard(ctx)
	case "offers":
		return runOffers(ctx, console, args[1:])
	case "send":
		return runSend(ctx, console, args[1:])
	case "users":
		return runUsers(ctx, console, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runOffers(ctx context.Context, console *cli.Console, args []string) error {
	fs := flag.NewFlagSet("offers", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number (1-based)")
	perPage := fs.Int("per-page", 0, "rows per page")
	tab := fs.String("tab", "all", "status tab: all or accepted")
	search := fs.String("search", "", "free-text filter on name, email or phone")
	offerType := fs.String("type", "", "type filter, e.g. monthly")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params := cli.OfferListParams{
		Page:       *page - 1,
		PageSize:   *perPage,
		Query:      *search,
		TypeFilter: *offerType,
	}
	if strings.EqualFold(*tab, "accepted") {
		params.Tab = queries.TabAccepted
	}
	return console.Offers(ctx, params)
}

func runSend(ctx context.Context, console *cli.Console, args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	plan := fs.String("plan", "", "plan type: monthly, yearly or pay_as_you_go")
	additions := fs.String("additions", "", "comma-separated: refundable, on_demand, negotiable")
	user := fs.String("user", "", "user search query; must resolve to a single user")
	expired := fs.String("expired", "", "expiry date, e.g. 2026-01-31")
	price := fs.Float64("price", 0, "offer price")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params := cli.SendOfferParams{
		PlanType:  *plan,
		UserQuery: *user,
		Expired:   *expired,
	}
	if *additions != "" {
		for _, addition := range strings.Split(*additions, ",") {
			params.Additions = append(params.Additions, strings.TrimSpace(addition))
		}
	}
	priceSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "price" {
			priceSet = true
		}
	})
	if priceSet {
		params.Price = price
	}
	return console.SendOffer(ctx, params)
}

func runUsers(ctx context.Context, console *cli.Console, args []string) error {
	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	search := fs.String("search", "", "search query")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return console.Users(ctx, *search)
}
