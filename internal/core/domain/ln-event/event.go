// This package contains the events raised by the channel engine.
// They are inputs of the node: the application reacts to them and translates
// them into domain events, they are never persisted nor broadcast as they are.
package lnevent

import (
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/lightningnetwork/lnd/lntypes"
	"github.com/lightningnetwork/lnd/lnwire"
)

type Event interface {
	EventName() string
}

// a remote peer wants to open a channel with us
type OpenChannelRequest struct {
	TemporaryChannelID lnwire.ChannelID
	CounterpartyNodeID *btcec.PublicKey
	FundingAmount      btcutil.Amount
	PushAmount         lnwire.MilliSatoshi
	ChannelType        string
}

type ChannelReady struct {
	ChannelID          lnwire.ChannelID
	UserChannelID      uint64
	CounterpartyNodeID *btcec.PublicKey
	ChannelType        string
}

// CounterpartyNodeID and FundingOutpoint are nil for channels closed before
// they were fully negotiated.
type ChannelClosed struct {
	ChannelID          lnwire.ChannelID
	UserChannelID      uint64
	Reason             string
	CounterpartyNodeID *btcec.PublicKey
	FundingOutpoint    *wire.OutPoint
}

// the engine needs us to build and hand back the funding transaction
type FundingGenerationReady struct {
	TemporaryChannelID lnwire.ChannelID
	CounterpartyNodeID *btcec.PublicKey
	ChannelValue       btcutil.Amount
	OutputScript       []byte
	UserChannelID      uint64
}

type ChannelPending struct {
	ChannelID          lnwire.ChannelID
	TemporaryChannelID lnwire.ChannelID
	CounterpartyNodeID *btcec.PublicKey
	FundingOutpoint    wire.OutPoint
}

type PendingHTLCsForwardable struct {
	TimeForwardable time.Duration
}

type PaymentClaimable struct {
	ReceiverNodeID *btcec.PublicKey
	PaymentHash    lntypes.Hash
	Amount         lnwire.MilliSatoshi
	Purpose        PaymentPurpose
	ClaimDeadline  uint32
}

type PaymentClaimed struct {
	ReceiverNodeID *btcec.PublicKey
	PaymentHash    lntypes.Hash
	Amount         lnwire.MilliSatoshi
	Purpose        PaymentPurpose
}

type PaymentSent struct {
	PaymentID       [32]byte
	PaymentHash     lntypes.Hash
	PaymentPreimage lntypes.Preimage
	FeePaid         *lnwire.MilliSatoshi
}

type PaymentPathSuccessful struct {
	PaymentID   [32]byte
	PaymentHash *lntypes.Hash
	Path        Path
}

type Path struct {
	Hops []RouteHop
}

type RouteHop struct {
	PubKey          *btcec.PublicKey
	ShortChannelID  lnwire.ShortChannelID
	Fee             lnwire.MilliSatoshi
	CltvExpiryDelta uint32
}

func (OpenChannelRequest) EventName() string      { return "OpenChannelRequest" }
func (ChannelReady) EventName() string            { return "ChannelReady" }
func (ChannelClosed) EventName() string           { return "ChannelClosed" }
func (FundingGenerationReady) EventName() string  { return "FundingGenerationReady" }
func (ChannelPending) EventName() string          { return "ChannelPending" }
func (PendingHTLCsForwardable) EventName() string { return "PendingHTLCsForwardable" }
func (PaymentClaimable) EventName() string        { return "PaymentClaimable" }
func (PaymentClaimed) EventName() string          { return "PaymentClaimed" }
func (PaymentSent) EventName() string             { return "PaymentSent" }
func (PaymentPathSuccessful) EventName() string   { return "PaymentPathSuccessful" }
