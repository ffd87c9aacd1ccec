package application

import (
	"context"
	"fmt"

	"github.com/lampo-network/lampod/internal/core/domain"
	lnevent "github.com/lampo-network/lampod/internal/core/domain/ln-event"
	"github.com/lightningnetwork/lnd/lntypes"
	log "github.com/sirupsen/logrus"
)

const unknownPurpose = "unknown"

func (s *service) react(ctx context.Context, event lnevent.Event) error {
	switch ev := event.(type) {
	case lnevent.OpenChannelRequest:
		log.Infof(
			"declining inbound channel open from %s",
			nodeIDString(ev.CounterpartyNodeID),
		)
		return fmt.Errorf("%w: inbound channel open", ErrUnsupportedFeature)

	case lnevent.ChannelReady:
		log.Infof("channel %s is ready", ev.ChannelID)
		s.Emit(domain.ChannelReady{
			CounterpartyNodeID: nodeIDString(ev.CounterpartyNodeID),
			ChannelID:          ev.ChannelID.String(),
			ChannelType:        ev.ChannelType,
		})
		return nil

	case lnevent.ChannelClosed:
		log.Infof("channel %s closed: %s", ev.ChannelID, ev.Reason)
		s.Emit(domain.CloseChannelEvent{
			ChannelID:          ev.ChannelID.String(),
			Reason:             ev.Reason,
			CounterpartyNodeID: nodeIDString(ev.CounterpartyNodeID),
			FundingOutpoint:    outpointString(ev.FundingOutpoint),
		})
		return nil

	case lnevent.FundingGenerationReady:
		return s.fundChannel(ctx, ev)

	case lnevent.ChannelPending:
		log.Infof(
			"channel %s pending with funding outpoint %s",
			ev.ChannelID, ev.FundingOutpoint,
		)
		s.Emit(domain.ChannelPending{
			CounterpartyNodeID: nodeIDString(ev.CounterpartyNodeID),
			FundingOutpoint:    ev.FundingOutpoint.String(),
		})
		return nil

	case lnevent.PendingHTLCsForwardable:
		s.forwardPendingHTLCs(ev)
		return nil

	case lnevent.PaymentClaimable:
		return s.claimPayment(ev)

	case lnevent.PaymentClaimed:
		return s.storeClaimedPayment(ctx, ev)

	case lnevent.PaymentSent:
		log.Infof("payment %s sent", ev.PaymentHash)
		if ev.FeePaid != nil {
			log.Debugf("paid %s in fees for payment %s", *ev.FeePaid, ev.PaymentHash)
		}
		return nil

	case lnevent.PaymentPathSuccessful:
		paymentHash := ""
		if ev.PaymentHash != nil {
			paymentHash = ev.PaymentHash.String()
		}
		s.Emit(domain.PaymentEvent{
			State:       domain.PaymentSuccess,
			PaymentHash: paymentHash,
			Path:        hopsFromPath(ev.Path),
		})
		return nil

	case nil:
		return fmt.Errorf("%w: nil event", ErrUnexpectedProtocolEvent)

	default:
		return fmt.Errorf("%w: %s", ErrUnexpectedProtocolEvent, eventName(event))
	}
}

func (s *service) forwardPendingHTLCs(ev lnevent.PendingHTLCsForwardable) {
	if s.scheduler == nil || ev.TimeForwardable <= 0 {
		s.channels.ProcessPendingHTLCForwards()
		return
	}

	if err := s.scheduler.ScheduleTaskOnce(
		ev.TimeForwardable, s.channels.ProcessPendingHTLCForwards,
	); err != nil {
		log.WithError(err).Warn(
			"failed to schedule htlc forwarding, processing them now",
		)
		s.channels.ProcessPendingHTLCForwards()
		return
	}
	log.Debugf("htlc forwarding scheduled in %s", ev.TimeForwardable)
}

func (s *service) claimPayment(ev lnevent.PaymentClaimable) error {
	if ev.Purpose == nil {
		return fmt.Errorf(
			"%w: payment %s has no purpose", ErrMissingPreimage, ev.PaymentHash,
		)
	}

	preimage, ok := ev.Purpose.Preimage()
	if !ok {
		return fmt.Errorf(
			"%w: %s payment %s", ErrMissingPreimage, ev.Purpose.Kind(),
			ev.PaymentHash,
		)
	}
	if !preimage.Matches(ev.PaymentHash) {
		return fmt.Errorf("%w: payment %s", ErrPreimageMismatch, ev.PaymentHash)
	}

	s.channels.ClaimFunds(preimage)
	log.Infof(
		"claiming %s payment %s of %s", ev.Purpose.Kind(), ev.PaymentHash,
		ev.Amount,
	)
	return nil
}

func (s *service) storeClaimedPayment(
	ctx context.Context, ev lnevent.PaymentClaimed,
) error {
	var (
		preimage *lntypes.Preimage
		secret   *[32]byte
		purpose  = unknownPurpose
	)
	if ev.Purpose != nil {
		purpose = ev.Purpose.Kind()
		if p, ok := ev.Purpose.Preimage(); ok {
			preimage = &p
		}
		if sec, ok := ev.Purpose.Secret(); ok {
			secret = &sec
		}
	}
	log.Infof("%s payment %s claimed for %s", purpose, ev.PaymentHash, ev.Amount)

	if s.repoManager == nil {
		log.Warnf("payment %s not persisted, no repository configured", ev.PaymentHash)
		return nil
	}

	payment := domain.NewPayment(
		ev.PaymentHash, preimage, secret, uint64(ev.Amount), purpose,
	)
	if err := s.repoManager.Payments().Add(ctx, payment); err != nil {
		return collaboratorError{"payment persistence", err}
	}
	return nil
}
