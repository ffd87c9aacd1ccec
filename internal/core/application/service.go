package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lampo-network/lampod/internal/core/domain"
	lnevent "github.com/lampo-network/lampod/internal/core/domain/ln-event"
	"github.com/lampo-network/lampod/internal/core/ports"
	log "github.com/sirupsen/logrus"
)

const defaultFundingConfTarget = 6

type service struct {
	fundingConfTarget uint32

	chain       ports.ChainService
	wallet      ports.WalletService
	channels    ports.ChannelService
	scheduler   ports.SchedulerService
	repoManager ports.RepoManager

	handlers *handlerChain
	events   *broker[domain.Event]
	funding  *fundingSet
}

// NewService returns the node dispatcher. The scheduler and the repo manager
// are optional: without a scheduler htlc forwards are flushed right away,
// without a repo manager claimed payments are only logged.
func NewService(
	fundingConfTarget uint32, eventBufferSize int,
	chainSvc ports.ChainService, walletSvc ports.WalletService,
	channelSvc ports.ChannelService, schedulerSvc ports.SchedulerService,
	repoManager ports.RepoManager,
) (Service, error) {
	if chainSvc == nil {
		return nil, fmt.Errorf("missing chain service")
	}
	if walletSvc == nil {
		return nil, fmt.Errorf("missing wallet service")
	}
	if channelSvc == nil {
		return nil, fmt.Errorf("missing channel service")
	}
	if fundingConfTarget == 0 {
		fundingConfTarget = defaultFundingConfTarget
	}

	if schedulerSvc != nil {
		schedulerSvc.Start()
	}

	return &service{
		fundingConfTarget: fundingConfTarget,
		chain:             chainSvc,
		wallet:            walletSvc,
		channels:          channelSvc,
		scheduler:         schedulerSvc,
		repoManager:       repoManager,
		handlers:          newHandlerChain(),
		events:            newBroker[domain.Event](eventBufferSize),
		funding:           newFundingSet(),
	}, nil
}

func (s *service) RegisterExternalHandler(handler ExternalHandler) {
	if handler == nil {
		return
	}
	s.handlers.push(handler)
}

func (s *service) React(
	ctx context.Context, command domain.Command,
) (json.RawMessage, error) {
	switch cmd := command.(type) {
	case domain.ExternalCommand:
		return s.handlers.resolve(ctx, cmd.Request)
	case *domain.ExternalCommand:
		if cmd == nil {
			return nil, fmt.Errorf("%w: nil command", domain.ErrMalformedRequest)
		}
		return s.handlers.resolve(ctx, cmd.Request)
	default:
		return nil, fmt.Errorf("%w: %T", domain.ErrMalformedRequest, command)
	}
}

func (s *service) Handle(ctx context.Context, event lnevent.Event) error {
	return s.react(ctx, event)
}

func (s *service) Call(
	ctx context.Context, method string, args, result interface{},
) error {
	params, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("%w: failed to encode params for %s: %s",
			ErrSerialization, method, err)
	}

	command, err := domain.NewCommand(domain.NewRequest(method, params))
	if err != nil {
		return err
	}
	log.Debugf("dispatching %s", command)

	resp, err := s.React(ctx, command)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	if err := json.Unmarshal(resp, result); err != nil {
		return fmt.Errorf("%w: failed to decode response of %s: %s",
			ErrSerialization, method, err)
	}
	return nil
}

func (s *service) Emit(event domain.Event) {
	if event == nil {
		return
	}
	log.Debugf("emitting %s event on topic %s", event.GetType(), event.GetTopic())
	s.events.push(event)
}

func (s *service) Subscribe() (string, <-chan domain.Event) {
	return s.events.subscribe()
}

func (s *service) Unsubscribe(id string) {
	s.events.unsubscribe(id)
}

func (s *service) Close() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	s.events.close()
}
