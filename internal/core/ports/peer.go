package ports

import (
	"context"

	"github.com/btcsuite/btcd/btcec/v2"
)

type PeerService interface {
	Connect(ctx context.Context, nodeID *btcec.PublicKey, addr string) error
	ListPeers(ctx context.Context) ([]Peer, error)
}

type Peer struct {
	NodeID  string `json:"node_id"`
	Address string `json:"address"`
}
