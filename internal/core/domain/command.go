package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrMalformedRequest = errors.New("unrecognized method shape")

// Request is an application request as delivered by the rpc transport.
type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

func NewRequest(method string, params json.RawMessage) Request {
	return Request{Method: method, Params: params}
}

type Command interface {
	isCommand()
}

type ExternalCommand struct {
	Request Request
}

func (ExternalCommand) isCommand() {}

func (c ExternalCommand) String() string {
	return fmt.Sprintf("ExternalCommand(%s)", c.Request.Method)
}

// NewCommand maps a request into the command it represents.
func NewCommand(req Request) (Command, error) {
	method := req.Method
	if len(method) <= 0 {
		return nil, fmt.Errorf("%w: missing method", ErrMalformedRequest)
	}
	if strings.IndexFunc(method, unicode.IsSpace) >= 0 {
		return nil, fmt.Errorf("%w: invalid method %q", ErrMalformedRequest, method)
	}

	params := bytes.TrimSpace(req.Params)
	if len(params) > 0 {
		if !json.Valid(params) {
			return nil, fmt.Errorf(
				"%w: invalid params for method %s", ErrMalformedRequest, method,
			)
		}
		// Params are positional, named or absent.
		switch params[0] {
		case '{', '[', 'n':
		default:
			return nil, fmt.Errorf(
				"%w: params for method %s must be an object or an array",
				ErrMalformedRequest, method,
			)
		}
	}

	return ExternalCommand{Request{method, params}}, nil
}
