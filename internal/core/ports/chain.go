package ports

import (
	"context"

	"github.com/lightningnetwork/lnd/lnwallet/chainfee"
)

type ChainService interface {
	EstimateFeeRate(ctx context.Context, targetBlocks uint32) (chainfee.SatPerVByte, error)
}
