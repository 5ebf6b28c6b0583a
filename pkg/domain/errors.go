package domain

import "errors"

// Common domain errors
var (
	// ErrNetworkFailure is returned when a rate sub-fetch fails at the
	// transport level (connection error, timeout, non-2xx status).
	ErrNetworkFailure = errors.New("rate source network failure")
	// ErrMalformedResponse is returned when a rate sub-fetch succeeds at the
	// transport level but the payload lacks an expected field or carries an
	// unusable value.
	ErrMalformedResponse = errors.New("rate source returned malformed response")
	// ErrRatesUnavailable is returned when both the live fetch and the durable
	// fallback failed; no snapshot could be produced for this call.
	ErrRatesUnavailable = errors.New("exchange rates unavailable")
	// ErrUnknownUnit is returned when a conversion names a unit that is neither
	// a recognized sentinel asset nor present in the snapshot's fiat table.
	ErrUnknownUnit = errors.New("unknown currency unit")
	// ErrInvalidRate is returned when a conversion hits a zero or negative
	// denominator; it indicates snapshot corruption.
	ErrInvalidRate = errors.New("invalid exchange rate")
	// ErrInvalidAmount is returned when the input amount is not a finite number.
	ErrInvalidAmount = errors.New("invalid amount")
)
