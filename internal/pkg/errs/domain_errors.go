package errs

import "errors"

// Domain-specific sentinel errors for usecase layers
var (
	// Offer list errors
	ErrOfferFetchFailed = errors.New("offer fetch failed")
	ErrStaleResponse    = errors.New("stale response discarded")

	// Offer creation errors
	ErrUserNotSelected   = errors.New("user not selected")
	ErrOfferCreateFailed = errors.New("offer create failed")

	// User search errors
	ErrUserSearchFailed = errors.New("user search failed")

	// Dashboard errors
	ErrSummaryFetchFailed = errors.New("dashboard summary fetch failed")
	ErrStatFetchFailed    = errors.New("dashboard stat fetch failed")

	// Validation errors
	ErrDraftValidation = errors.New("offer draft validation failed")

	// Session errors
	ErrSessionExpired = errors.New("session expired")
	ErrNoSessionToken = errors.New("no session token")
)
