package application

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/wire"
	"github.com/lampo-network/lampod/internal/core/domain"
	lnevent "github.com/lampo-network/lampod/internal/core/domain/ln-event"
	"github.com/lightningnetwork/lnd/lnwire"
)

// fundingSet tracks the temporary channel ids whose funding transaction is
// being built.
type fundingSet struct {
	lock     *sync.Mutex
	inFlight map[lnwire.ChannelID]struct{}
}

func newFundingSet() *fundingSet {
	return &fundingSet{&sync.Mutex{}, make(map[lnwire.ChannelID]struct{})}
}

func (f *fundingSet) acquire(id lnwire.ChannelID) bool {
	f.lock.Lock()
	defer f.lock.Unlock()

	if _, ok := f.inFlight[id]; ok {
		return false
	}
	f.inFlight[id] = struct{}{}
	return true
}

func (f *fundingSet) release(id lnwire.ChannelID) {
	f.lock.Lock()
	defer f.lock.Unlock()

	delete(f.inFlight, id)
}

func (f *fundingSet) len() int {
	f.lock.Lock()
	defer f.lock.Unlock()

	return len(f.inFlight)
}

func nodeIDString(key *btcec.PublicKey) string {
	if key == nil {
		return ""
	}
	return hex.EncodeToString(key.SerializeCompressed())
}

func outpointString(outpoint *wire.OutPoint) string {
	if outpoint == nil {
		return ""
	}
	return outpoint.String()
}

func serializeTx(tx *wire.MsgTx) (string, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

func hopsFromPath(path lnevent.Path) []domain.PaymentHop {
	hops := make([]domain.PaymentHop, 0, len(path.Hops))
	for _, hop := range path.Hops {
		hops = append(hops, domain.PaymentHop{
			NodeID:          nodeIDString(hop.PubKey),
			ShortChannelID:  hop.ShortChannelID.ToUint64(),
			FeeMsat:         uint64(hop.Fee),
			CltvExpiryDelta: hop.CltvExpiryDelta,
		})
	}
	return hops
}

// eventName never panics, not even for nil pointers wrapped in the interface.
func eventName(event lnevent.Event) (name string) {
	defer func() {
		if r := recover(); r != nil {
			name = fmt.Sprintf("%T", event)
		}
	}()
	return event.EventName()
}
