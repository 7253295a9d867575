package remote

import (
	"fmt"
	"net/http"
)

// NetworkError is a transport failure: refused connection, DNS, timeout
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProtocolError is a non-success HTTP status
type ProtocolError struct {
	StatusCode int
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ParseError is a response body that cannot be turned into a QueryResult
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
