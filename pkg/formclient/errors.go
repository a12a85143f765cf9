package formclient

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/formlab/pkg/userform"
)

var (
	// ErrMalformed means the server refused the payload's structure (400).
	// The client builds payloads from a Record, so this points at a client
	// and server disagreeing on the schema.
	ErrMalformed = errors.New("formclient: server rejected the submission as malformed")

	// ErrTransport covers network failures and any answer that is neither an
	// acceptance nor a rejection. It never carries an Error Map.
	ErrTransport = errors.New("formclient: transport failure")

	ErrInvalidEndpoint = errors.New("formclient: invalid endpoint")
)

// RejectedError is a submission that failed validation. Remote is false when
// the local gate rejected it and nothing was sent.
type RejectedError struct {
	Errors userform.Errors
	Remote bool
}

func (e *RejectedError) Error() string {
	where := "locally"
	if e.Remote {
		where = "by server"
	}
	return fmt.Sprintf("formclient: submission rejected %s: %s", where, e.Errors.Error())
}

func (e *RejectedError) Unwrap() error {
	return e.Errors
}
