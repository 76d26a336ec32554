package queries

import "offer-console/internal/infra/api"

// Tab selects the status tab above the offer list.
type Tab int

const (
	TabAll Tab = iota
	TabAccepted
)

// Phase is the fetch lifecycle of a page-backed view.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

// OfferListSnapshot is what a front end renders: the visible rows after
// client-side filtering plus the reconciled count for the pager.
type OfferListSnapshot struct {
	Rows           []api.Offer
	DisplayedCount int
	ServerTotal    int
	Page           int
	PageSize       int
	Phase          Phase
	ErrorMessage   string
}

// SummaryCard is one headline metric with its delta against the previous
// period.
type SummaryCard struct {
	Title      string
	CountK     float64
	Percentage int
}
