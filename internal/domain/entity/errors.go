package entity

import (
	"errors"
	"fmt"
)

// TransportError means the provider could not be reached or did not answer in time.
type TransportError struct {
	Endpoint   string
	StatusCode int // zero when no HTTP response was received
	Timeout    bool
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("provider %s: timed out: %v", e.Endpoint, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("provider %s: unexpected status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("provider %s: transport failure: %v", e.Endpoint, e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError carries an application level error returned by the provider.
type ProtocolError struct {
	Endpoint string
	Code     int
	Message  string
}

// UnknownProviderError is used when the provider error has no usable message.
const UnknownProviderError = "Unknown API error"

func (e *ProtocolError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("provider %s: rpc error %d: %s", e.Endpoint, e.Code, e.Message)
	}
	return fmt.Sprintf("provider %s: rpc error: %s", e.Endpoint, e.Message)
}

// DecodeError means a provider response did not match the expected shape.
// Params holds the JSON encoded request parameters; Body an excerpt of the response.
type DecodeError struct {
	Endpoint string
	Params   string
	Body     string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode provider response, endpoint: %s, params: %s: %v", e.Endpoint, e.Params, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MissingMediaError is returned when a collectible has no media entry to take a thumbnail from.
type MissingMediaError struct {
	Index int
	Title string
}

func (e *MissingMediaError) Error() string {
	return fmt.Sprintf("nft #%d (%q) has no media entries", e.Index, e.Title)
}

// IsTimeout reports whether err is a provider timeout.
func IsTimeout(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Timeout
}
