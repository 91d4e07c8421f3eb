package models

import "net/http"

// APIError is a failure that already knows how it should be rendered to the
// client: an HTTP status and a message for the {msg} body. The database layer
// returns these and the handlers' error pipeline translates them to the wire.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return e.Msg
}

// NotFound builds a 404 failure with the given message. Messages are part of
// the API contract and differ per endpoint ("Resource not found" vs
// "review_id not found"), so the caller supplies the exact wording.
func NotFound(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Msg: msg}
}

// BadRequest builds a 400 failure with the given message.
func BadRequest(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Msg: msg}
}
