package domain

import "errors"

// ErrorKind is the closed classification used to pick a backoff after a
// failed poll cycle.
type ErrorKind int

const (
	// KindUnclassified covers everything without a more specific class:
	// malformed provider payloads, store write failures, mail transport
	// failures. Recovered by the long backoff.
	KindUnclassified ErrorKind = iota
	// KindNetwork is a connectivity or timeout failure talking to the
	// upstream provider. Recovered by the short backoff.
	KindNetwork
	// KindConfigData is missing or unreadable store data needed for a
	// notification. Recovered locally: the notification is skipped and the
	// cycle continues.
	KindConfigData
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindConfigData:
		return "config_data"
	default:
		return "unclassified"
	}
}

// ErrNoMailConfig is returned by the store when the global mail
// configuration row is absent. A valid outcome, not a query failure.
var ErrNoMailConfig = errors.New("no mail configuration in store")

// ClassifiedError carries an ErrorKind alongside the underlying error.
type ClassifiedError struct {
	Kind ErrorKind
	Err  error
}

func (e *ClassifiedError) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// Classify wraps err with the given kind. Returns nil for a nil err.
func Classify(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &ClassifiedError{Kind: kind, Err: err}
}

// KindOf extracts the classification of err. Unwrapped errors are
// KindUnclassified.
func KindOf(err error) ErrorKind {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnclassified
}
