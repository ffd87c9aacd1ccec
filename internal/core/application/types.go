package application

import (
	"context"
	"encoding/json"

	"github.com/lampo-network/lampod/internal/core/domain"
	lnevent "github.com/lampo-network/lampod/internal/core/domain/ln-event"
)

type Service interface {
	RegisterExternalHandler(handler ExternalHandler)
	React(ctx context.Context, command domain.Command) (json.RawMessage, error)
	Handle(ctx context.Context, event lnevent.Event) error
	Call(ctx context.Context, method string, args, result interface{}) error
	Emit(event domain.Event)
	Subscribe() (string, <-chan domain.Event)
	Unsubscribe(id string)
	Close()
}

// ExternalHandler is a link of the command handler chain.
//
// Handlers are queried in registration order. A handler either answers the
// request (handled is true), declines it (handled is false, nil error) so the
// next handler is queried, or fails, in which case resolution stops and the
// error is returned to the caller as is. Handle must honour ctx and must not
// block the caller on work it can't cancel.
type ExternalHandler interface {
	Handle(ctx context.Context, req domain.Request) (resp json.RawMessage, handled bool, err error)
}

type HandlerFunc func(ctx context.Context, req domain.Request) (json.RawMessage, bool, error)

func (f HandlerFunc) Handle(
	ctx context.Context, req domain.Request,
) (json.RawMessage, bool, error) {
	return f(ctx, req)
}
