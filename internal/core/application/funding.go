package application

import (
	"context"
	"fmt"

	"github.com/lampo-network/lampod/internal/core/domain"
	lnevent "github.com/lampo-network/lampod/internal/core/domain/ln-event"
	log "github.com/sirupsen/logrus"
)

// fundChannel builds the funding transaction requested by the engine and hands
// it back. The steps are strictly sequential and at most one of them runs
// for a given temporary channel id.
func (s *service) fundChannel(
	ctx context.Context, ev lnevent.FundingGenerationReady,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tempChanID := ev.TemporaryChannelID
	if !s.funding.acquire(tempChanID) {
		return fmt.Errorf("%w: temporary channel %s", ErrFundingInFlight, tempChanID)
	}
	defer s.funding.release(tempChanID)

	nodeID := nodeIDString(ev.CounterpartyNodeID)
	channelValue := uint64(ev.ChannelValue)
	logger := log.WithFields(log.Fields{
		"temporary_channel_id": tempChanID.String(),
		"counterparty":         nodeID,
	})

	s.Emit(domain.FundingChannelStart{
		CounterpartyNodeID: nodeID,
		TemporaryChannelID: tempChanID.String(),
		ChannelValue:       channelValue,
	})

	feeRate, err := s.chain.EstimateFeeRate(ctx, s.fundingConfTarget)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return s.fundingFailed(collaboratorError{"fee estimation", err})
	}
	logger.Debugf("estimated funding fee rate %d sat/vB", int64(feeRate))

	if err := ctx.Err(); err != nil {
		return err
	}

	tx, err := s.wallet.BuildFundingTransaction(
		ctx, ev.OutputScript, ev.ChannelValue, feeRate,
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return s.fundingFailed(
			collaboratorError{"funding transaction construction", err},
		)
	}
	if tx == nil {
		return s.fundingFailed(collaboratorError{
			"funding transaction construction",
			fmt.Errorf("wallet returned no transaction"),
		})
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	txHex, err := serializeTx(tx)
	if err != nil {
		return s.fundingFailed(
			collaboratorError{"funding transaction serialization", err},
		)
	}
	txid := tx.TxHash().String()

	s.Emit(domain.FundingChannelEnd{
		CounterpartyNodeID: nodeID,
		TemporaryChannelID: tempChanID.String(),
		ChannelValue:       channelValue,
		FundingTxid:        txid,
		FundingTx:          txHex,
	})

	if err := s.channels.FinalizeFunding(
		tempChanID, ev.CounterpartyNodeID, tx,
	); err != nil {
		return s.fundingFailed(collaboratorError{"funding finalization", err})
	}

	logger.Infof("funding transaction %s handed over to the channel engine", txid)
	return nil
}

func (s *service) fundingFailed(err error) error {
	log.WithError(err).Warn("failed to fund channel")
	s.Emit(domain.ChannelEvent{
		State:   domain.ChannelStateError,
		Message: fmt.Sprintf("channel opening error: %s", err),
	})
	return err
}
