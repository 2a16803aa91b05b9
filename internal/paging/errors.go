package paging

import (
	"errors"
	"fmt"
	"net"
)

var (
	// ErrInvalidSelector is returned when a selector expression names an unknown field or parameter.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrInvalidOperation is returned when an operation binding cannot be called.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNoResponse is returned when a call reports success without a response.
	ErrNoResponse = errors.New("operation returned no response")
)

// EndpointResolutionError reports that the service host name could not be resolved.
// It usually means the region or endpoint URL is wrong, or the network is offline.
type EndpointResolutionError struct {
	Host string
	Err  error
}

func (e *EndpointResolutionError) Error() string {
	return fmt.Sprintf(
		"unable to resolve service endpoint %q: check the configured region and endpoint URL, and that the network is reachable: %v",
		e.Host, e.Err,
	)
}

func (e *EndpointResolutionError) Unwrap() error {
	return e.Err
}

// enrich wraps name-resolution failures found anywhere in the cause chain.
func enrich(err error) error {
	var resolved *EndpointResolutionError
	if errors.As(err, &resolved) {
		return err
	}

	var dnsErr *net.DNSError
	if !errors.As(err, &dnsErr) {
		return err
	}

	return &EndpointResolutionError{Host: dnsErr.Name, Err: err}
}
