package ports

import "context"

type InventoryService interface {
	GetInfo(ctx context.Context) (NodeInfo, error)
}

type NodeInfo struct {
	NodeID      string `json:"node_id"`
	Alias       string `json:"alias"`
	Network     string `json:"network"`
	BlockHeight uint32 `json:"block_height"`
	BlockHash   string `json:"block_hash"`
	NumPeers    int    `json:"num_peers"`
	NumChannels int    `json:"num_channels"`
}
