package esplora

import (
	"context"
	"fmt"
	"net/url"

	"github.com/lampo-network/lampod/internal/core/ports"
	"github.com/lightningnetwork/lnd/lnwallet/chainfee"
	log "github.com/sirupsen/logrus"
)

const minBlockTarget uint32 = 1

type service struct {
	client *esploraClient
}

// NewService returns a chain service estimating fee rates from the
// fee-estimates endpoint of an esplora instance. Estimates are never cached:
// every call fetches a fresh fee map and fails if the fetch does.
func NewService(esploraURL string) (ports.ChainService, error) {
	if _, err := url.ParseRequestURI(esploraURL); err != nil {
		return nil, fmt.Errorf("invalid esplora url: %s", err)
	}

	return &service{newEsploraClient(esploraURL)}, nil
}

func (s *service) EstimateFeeRate(
	ctx context.Context, targetBlocks uint32,
) (chainfee.SatPerVByte, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if targetBlocks < minBlockTarget {
		return 0, fmt.Errorf(
			"conf target of %d is too low, minimum accepted is %d",
			targetBlocks, minBlockTarget,
		)
	}
	if targetBlocks > chainfee.MaxBlockTarget {
		targetBlocks = chainfee.MaxBlockTarget
	}

	feeMap, err := s.client.getFeeMap(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, fmt.Errorf("failed to fetch fee estimates: %w", err)
	}

	feePerKVByte, ok := feeForTarget(feeMap, targetBlocks)
	if !ok {
		return 0, fmt.Errorf("no fee estimates available")
	}

	feeRate := chainfee.SatPerKVByte(feePerKVByte).FeePerKWeight()
	if feeRate < chainfee.FeePerKwFloor {
		feeRate = chainfee.FeePerKwFloor
	}

	log.Debugf(
		"fee rate for %d blocks target: %d sat/kw", targetBlocks, int64(feeRate),
	)
	return feeRate.FeePerVByte(), nil
}

// feeForTarget looks up the fee of the given target, falling back to the
// closest lower target first and to the closest higher one otherwise.
func feeForTarget(feeMap map[uint32]uint32, target uint32) (uint32, bool) {
	for t := target; t >= minBlockTarget; t-- {
		if fee, ok := feeMap[t]; ok {
			return fee, true
		}
	}
	for t := target + 1; t <= chainfee.MaxBlockTarget; t++ {
		if fee, ok := feeMap[t]; ok {
			return fee, true
		}
	}
	return 0, false
}
