package application

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/lampo-network/lampod/internal/core/domain"
	log "github.com/sirupsen/logrus"
)

// handlerChain is the ordered list of external handlers. Dispatch works on a
// snapshot so handlers registered meanwhile are only seen by later commands.
type handlerChain struct {
	lock     *sync.RWMutex
	handlers []ExternalHandler
}

func newHandlerChain() *handlerChain {
	return &handlerChain{
		lock:     &sync.RWMutex{},
		handlers: make([]ExternalHandler, 0),
	}
}

func (c *handlerChain) push(handler ExternalHandler) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.handlers = append(c.handlers, handler)
}

func (c *handlerChain) len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return len(c.handlers)
}

func (c *handlerChain) snapshot() []ExternalHandler {
	c.lock.RLock()
	defer c.lock.RUnlock()

	// Full slice expression: a concurrent push must reallocate instead of
	// writing past the snapshot length.
	return c.handlers[:len(c.handlers):len(c.handlers)]
}

// resolve returns the response of the first handler that handles req.
func (c *handlerChain) resolve(
	ctx context.Context, req domain.Request,
) (json.RawMessage, error) {
	handlers := c.snapshot()
	log.Debugf("external handler size %d", len(handlers))

	for _, handler := range handlers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, handled, err := handler.Handle(ctx, req)
		if err != nil {
			return nil, err
		}
		if handled {
			return resp, nil
		}
	}

	return nil, errMethodNotFound{req.Method}
}
