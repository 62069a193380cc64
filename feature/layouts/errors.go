package layouts

import (
	"errors"
)

var (
	// ErrConfiguration means the account lacks the identity or transport
	// required for the request. No request was attempted.
	ErrConfiguration = errors.New("layouts: api or site id not found")

	// ErrParse means the remote payload could not be decoded into a catalog.
	ErrParse = errors.New("layouts: unable to parse response")

	// ErrPersistence means the local store rejected the reconciliation.
	// Nothing was committed.
	ErrPersistence = errors.New("layouts: unable to persist catalog")
)

// Kind classifies a pipeline failure.
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindTransport     Kind = "transport"
	KindParse         Kind = "parse"
	KindPersistence   Kind = "persistence"
)

// KindOf returns the failure kind of err. Errors that carry none of the
// package sentinels come from the transport, which passes them through as is.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	default:
		return KindTransport
	}
}
