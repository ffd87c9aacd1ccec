package application

import (
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const defaultListenerBufferSize = 64

type listener[T any] struct {
	id string
	ch chan T
}

// broker fans out every pushed value to all the listeners subscribed at that
// moment. Pushing never blocks: a listener whose buffer is full misses the
// value.
type broker[T any] struct {
	lock       *sync.RWMutex
	listeners  []*listener[T]
	bufferSize int
	closed     bool
}

func newBroker[T any](bufferSize int) *broker[T] {
	if bufferSize <= 0 {
		bufferSize = defaultListenerBufferSize
	}
	return &broker[T]{
		lock:       &sync.RWMutex{},
		listeners:  make([]*listener[T], 0),
		bufferSize: bufferSize,
	}
}

func (h *broker[T]) subscribe() (string, <-chan T) {
	h.lock.Lock()
	defer h.lock.Unlock()

	l := &listener[T]{
		id: uuid.New().String(),
		ch: make(chan T, h.bufferSize),
	}
	if h.closed {
		close(l.ch)
		return l.id, l.ch
	}

	h.listeners = append(h.listeners, l)
	return l.id, l.ch
}

func (h *broker[T]) unsubscribe(id string) {
	h.lock.Lock()
	defer h.lock.Unlock()

	for i, l := range h.listeners {
		if l.id == id {
			close(l.ch)
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

func (h *broker[T]) push(value T) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	for _, l := range h.listeners {
		select {
		case l.ch <- value:
		default:
			log.Warnf("event listener %s is not keeping up, dropping event", l.id)
		}
	}
}

func (h *broker[T]) len() int {
	h.lock.RLock()
	defer h.lock.RUnlock()

	return len(h.listeners)
}

func (h *broker[T]) close() {
	h.lock.Lock()
	defer h.lock.Unlock()

	if h.closed {
		return
	}
	for _, l := range h.listeners {
		close(l.ch)
	}
	h.listeners = nil
	h.closed = true
}
