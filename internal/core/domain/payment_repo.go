package domain

import (
	"context"

	"github.com/lightningnetwork/lnd/lntypes"
)

type PaymentRepository interface {
	Add(ctx context.Context, payment Payment) error
	Get(ctx context.Context, hash lntypes.Hash) (*Payment, error)
	List(ctx context.Context) ([]Payment, error)
	Close()
}
