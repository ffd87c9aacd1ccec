package application

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFeature      = errors.New("unsupported feature")
	ErrUnrecognizedCommand     = errors.New("unrecognized command")
	ErrCollaboratorFailure     = errors.New("collaborator failure")
	ErrUnexpectedProtocolEvent = errors.New("unexpected protocol event")
	ErrFundingInFlight         = errors.New("funding already in progress")
	ErrMissingPreimage         = errors.New("missing payment preimage")
	ErrPreimageMismatch        = errors.New("preimage does not match payment hash")
	ErrSerialization           = errors.New("serialization error")
)

type errMethodNotFound struct {
	method string
}

func (e errMethodNotFound) Error() string {
	return fmt.Sprintf("method `%s` not found", e.method)
}

func (e errMethodNotFound) Unwrap() error {
	return ErrUnrecognizedCommand
}

type collaboratorError struct {
	op  string
	err error
}

func (e collaboratorError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.op, e.err)
}

func (e collaboratorError) Unwrap() []error {
	return []error{ErrCollaboratorFailure, e.err}
}
