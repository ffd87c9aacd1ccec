package ports

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/wire"
	"github.com/lightningnetwork/lnd/lntypes"
	"github.com/lightningnetwork/lnd/lnwire"
)

// ChannelService is the channel engine side of the node.
// Implementations are responsible for not claiming the same payment twice.
type ChannelService interface {
	FinalizeFunding(
		temporaryChannelID lnwire.ChannelID, counterparty *btcec.PublicKey,
		fundingTx *wire.MsgTx,
	) error
	ClaimFunds(preimage lntypes.Preimage)
	ProcessPendingHTLCForwards()
}
