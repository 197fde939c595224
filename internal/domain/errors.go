package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidPrompt       = errors.New("invalid prompt")
	ErrUnsafePrompt        = errors.New("unsafe prompt")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrProviderFailure     = errors.New("provider failure")
	ErrRateLimited         = errors.New("rate limited")
	ErrNotEligible         = errors.New("not eligible")
)
