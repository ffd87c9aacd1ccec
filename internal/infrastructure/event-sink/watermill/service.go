package watermillsink

import (
	"encoding/json"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/lampo-network/lampod/internal/core/domain"
	"github.com/lampo-network/lampod/internal/core/ports"
	log "github.com/sirupsen/logrus"
)

const EventTypeMetadataKey = "event_type"

type service struct {
	publisher message.Publisher
	wg        *sync.WaitGroup
}

// NewService returns a sink publishing every domain event on the watermill
// topic named after the event topic.
func NewService(publisher message.Publisher) ports.EventSink {
	return &service{publisher, &sync.WaitGroup{}}
}

// NewGoChannelPubSub returns the in-process pub/sub used when no external
// broker is configured.
func NewGoChannelPubSub(bufferSize int64) *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: bufferSize},
		watermill.NewStdLogger(false, false),
	)
}

func (s *service) Forward(events <-chan domain.Event) {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		for event := range events {
			if err := s.publish(event); err != nil {
				log.WithError(err).Warnf(
					"failed to forward %s event", event.GetType(),
				)
			}
		}
	}()
}

func (s *service) Close() {
	s.wg.Wait()
	//nolint:errcheck
	s.publisher.Close()
}

func (s *service) publish(event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(EventTypeMetadataKey, event.GetType().String())

	return s.publisher.Publish(event.GetTopic(), msg)
}
