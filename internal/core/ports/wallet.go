package ports

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/lightningnetwork/lnd/lnwallet/chainfee"
)

type WalletService interface {
	// BuildFundingTransaction returns a signed transaction paying amount to
	// outputScript. It may block on signing.
	BuildFundingTransaction(
		ctx context.Context, outputScript []byte,
		amount btcutil.Amount, feeRate chainfee.SatPerVByte,
	) (*wire.MsgTx, error)
}
