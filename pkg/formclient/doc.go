// Package formclient submits registration records to the forms API.
//
// Submit runs userform.Evaluate before anything goes on the wire, so a
// record the server would reject is never sent. The result is one of:
//
//   - the echoed userform.User on acceptance;
//   - *RejectedError with the Error Map, from the local gate or from the
//     server's 422 answer;
//   - ErrMalformed when the server refuses the payload's structure;
//   - ErrTransport for network failures and unexpected answers.
//
// Transport failures never appear as field errors.
package formclient
