package d1

import (
	"errors"
	"fmt"
	"strings"
)

type Reason string

const (
	ReasonHTTPStatus        Reason = "http_status"
	ReasonApplicationError  Reason = "application_error"
	ReasonStatementFailed   Reason = "statement_failed"
	ReasonMalformedResponse Reason = "malformed_response"
	ReasonTransport         Reason = "transport"
)

var (
	// ErrHTTPStatus matches responses with a status other than 200.
	ErrHTTPStatus = errors.New("d1: unexpected http status")

	// ErrApplication matches 200 responses whose body reports errors.
	ErrApplication = errors.New("d1: query service reported an error")

	// ErrStatementFailed matches a missing or failed statement result.
	ErrStatementFailed = errors.New("d1: statement failed")

	// ErrMalformedResponse matches bodies that do not have the expected shape.
	ErrMalformedResponse = errors.New("d1: malformed response")

	// ErrTransport matches failures before a response was received.
	ErrTransport = errors.New("d1: transport failure")
)

var reasonErrors = map[Reason]error{
	ReasonHTTPStatus:        ErrHTTPStatus,
	ReasonApplicationError:  ErrApplication,
	ReasonStatementFailed:   ErrStatementFailed,
	ReasonMalformedResponse: ErrMalformedResponse,
	ReasonTransport:         ErrTransport,
}

// RemoteProtocolError is the only error kind returned by the executor.
// Body holds the raw response body whenever one was received.
type RemoteProtocolError struct {
	Reason     Reason
	StatusCode int
	Status     string
	Body       []byte
	Messages   []string
	Err        error
}

func (e *RemoteProtocolError) Error() string {
	var b strings.Builder

	b.WriteString("error from d1 query service (")
	b.WriteString(string(e.Reason))
	b.WriteString(")")

	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": %s", e.Status)
	}

	if len(e.Messages) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(e.Messages, "; "))
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	if len(e.Body) > 0 {
		fmt.Fprintf(&b, "\n%s", e.Body)
	}

	return b.String()
}

func (e *RemoteProtocolError) Unwrap() []error {
	errs := []error{}

	if sentinel, ok := reasonErrors[e.Reason]; ok {
		errs = append(errs, sentinel)
	}

	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}
