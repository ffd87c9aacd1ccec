package domain

import (
	"fmt"
	"time"

	"github.com/lightningnetwork/lnd/lntypes"
)

type PaymentState string

const (
	PaymentSuccess PaymentState = "success"
	PaymentFailure PaymentState = "failure"
	PaymentPending PaymentState = "pending"
)

type PaymentHop struct {
	NodeID          string `json:"node_id"`
	ShortChannelID  uint64 `json:"short_channel_id"`
	FeeMsat         uint64 `json:"fee_msat"`
	CltvExpiryDelta uint32 `json:"cltv_expiry_delta"`
}

// Payment is the record of a claimed incoming payment.
type Payment struct {
	Hash       lntypes.Hash
	Preimage   *lntypes.Preimage
	Secret     *[32]byte
	AmountMsat uint64
	Purpose    string
	Timestamp  int64
}

func NewPayment(
	hash lntypes.Hash, preimage *lntypes.Preimage, secret *[32]byte,
	amountMsat uint64, purpose string,
) Payment {
	return Payment{
		Hash:       hash,
		Preimage:   preimage,
		Secret:     secret,
		AmountMsat: amountMsat,
		Purpose:    purpose,
		Timestamp:  time.Now().Unix(),
	}
}

func (p Payment) Validate() error {
	if p.Hash == (lntypes.Hash{}) {
		return fmt.Errorf("missing payment hash")
	}
	if len(p.Purpose) <= 0 {
		return fmt.Errorf("missing payment purpose")
	}
	if p.Preimage != nil && !p.Preimage.Matches(p.Hash) {
		return fmt.Errorf("preimage does not match payment hash %s", p.Hash)
	}
	return nil
}
